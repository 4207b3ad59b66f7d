package app

import "strings"

// Normalize lowercases the name, strips every character that is not a
// lowercase letter or a space, and trims surrounding whitespace. Applying
// it twice yields the same result.
func Normalize(name string) string {
	name = strings.ToLower(name)
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || r == ' ' {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// Grade reports whether a free-text guess matches the winner's name:
// exact match, last-name-only match, or any contiguous substring of the
// normalized name. The substring rule is deliberately lenient and defines
// the game's difficulty; do not tighten it.
func Grade(userInput, correctName string) bool {
	nc := Normalize(correctName)
	nu := Normalize(userInput)

	last := nc
	if i := strings.LastIndex(nc, " "); i >= 0 {
		last = nc[i+1:]
	}
	return nu == nc || nu == last || strings.Contains(nc, nu)
}
