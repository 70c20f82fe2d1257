package passwordpolicy

import "errors"

// ErrUnknownPolicy is returned by ByName for names outside Names().
var ErrUnknownPolicy = errors.New("unknown password policy")
