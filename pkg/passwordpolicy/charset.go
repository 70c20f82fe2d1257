package passwordpolicy

import "strings"

// CharSet reports whether a rune belongs to a character class.
type CharSet func(r rune) bool

// specialChars is the ASCII punctuation set plus space.
const specialChars = " !\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

var (
	Lowercase CharSet = func(r rune) bool { return r >= 'a' && r <= 'z' }
	Uppercase CharSet = func(r rune) bool { return r >= 'A' && r <= 'Z' }
	Digits    CharSet = func(r rune) bool { return r >= '0' && r <= '9' }
	Special   CharSet = func(r rune) bool { return strings.ContainsRune(specialChars, r) }
)
