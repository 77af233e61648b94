package memory

import (
	"errors"
	"strings"
)

// ErrUnsupportedPattern - шаблон Keys с '?', '[' или '*' не в конце.
var ErrUnsupportedPattern = errors.New("only literal or trailing '*' key patterns are supported")

// keyPattern - шаблон вида Redis MATCH, сведённый к литералу: "<literal>" или "<literal>*".
// Экранирование '\' снимается. Этого хватает для "<escaped prefix>:*" из Flush.
type keyPattern struct {
	literal string
	prefix  bool
}

func parsePattern(pattern string) (keyPattern, error) {
	var b strings.Builder
	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; c {
		case '\\':
			if i+1 < len(pattern) {
				i++
			}
			b.WriteByte(pattern[i])
		case '*':
			if i != len(pattern)-1 {
				return keyPattern{}, ErrUnsupportedPattern
			}
			return keyPattern{literal: b.String(), prefix: true}, nil
		case '?', '[':
			return keyPattern{}, ErrUnsupportedPattern
		default:
			b.WriteByte(c)
		}
	}
	return keyPattern{literal: b.String()}, nil
}

func (p keyPattern) match(key string) bool {
	if p.prefix {
		return strings.HasPrefix(key, p.literal)
	}
	return key == p.literal
}
