// Package filename derives on-disk names for uploaded files.
package filename

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const randomMax = 1_000_000_000

// New returns "<unix millis>-<random>-<sanitized original>". The prefix keeps
// names distinct across concurrent uploads of the same file.
func New(original string) string {
	return fmt.Sprintf("%d-%d-%s", time.Now().UnixMilli(), rand.Intn(randomMax+1), Sanitize(original))
}

// Sanitize replaces every character outside [A-Za-z0-9.-] with an underscore.
func Sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r == '.', r == '-':
			return r
		default:
			return '_'
		}
	}, name)
}
