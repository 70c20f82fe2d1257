package connection

import "errors"

var (
	ErrParsingCancelled  = errors.New("connection settings parsing cancelled")
	ErrFailedToParse     = errors.New("failed to parse connection settings")
	ErrFailedToReadFile  = errors.New("failed to read connection settings file")
	ErrUnsupportedFormat = errors.New("unsupported connection settings format")
	ErrInvalidSettings   = errors.New("invalid connection settings")
)
