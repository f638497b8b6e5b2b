// Package nickname derives display nicknames from names supplied by an
// external identity provider.
package nickname

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

const (
	MaxRunes = 10
	Fallback = "user"
)

// Format trims, collapses inner whitespace and caps the result at MaxRunes.
func Format(raw string) string {
	name := strings.Join(strings.Fields(raw), " ")
	runes := []rune(name)
	if len(runes) > MaxRunes {
		name = strings.TrimSpace(string(runes[:MaxRunes]))
	}
	if name == "" {
		return Fallback
	}
	return name
}

// WithSuffix appends "#" and a four digit tag, e.g. "minsu#0427".
func WithSuffix(base string, tag int) string {
	return fmt.Sprintf("%s#%04d", base, tag%10000)
}

// RandomTag returns a value for WithSuffix.
func RandomTag() int {
	return rand.IntN(10000)
}
