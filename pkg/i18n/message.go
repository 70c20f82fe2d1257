package i18n

import "regexp"

// Message is a localizable string: a stable lookup key, the default text used
// when the key has no translation, and named arguments as key/value pairs.
type Message struct {
	Key     string
	Default string
	Args    []string
}

// NewMessage builds a Message. Args are key/value pairs; an odd trailing
// argument is ignored.
func NewMessage(key, defaultText string, args ...string) Message {
	return Message{Key: key, Default: defaultText, Args: args}
}

// With returns a copy of m with extra arguments appended.
func (m Message) With(args ...string) Message {
	merged := make([]string, 0, len(m.Args)+len(args))
	merged = append(merged, m.Args...)
	merged = append(merged, args...)
	m.Args = merged
	return m
}

// String renders the default text with its arguments.
func (m Message) String() string {
	return Format(m.Default, m.Args...)
}

// Localizer turns a Message into display text for a fixed locale.
type Localizer interface {
	Localize(msg Message) string
}

// LocalizerFunc adapts a plain function to the Localizer interface.
type LocalizerFunc func(msg Message) string

func (f LocalizerFunc) Localize(msg Message) string {
	return f(msg)
}

// Defaults renders every message with its default text.
var Defaults Localizer = LocalizerFunc(func(msg Message) string {
	return msg.String()
})

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// Format substitutes `%{name}` placeholders in tmpl with values from the
// key/value pairs in args. Unknown placeholders are left untouched.
func Format(tmpl string, args ...string) string {
	if len(args) < 2 {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
