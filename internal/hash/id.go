// Package hash derives the 64-bit identifiers used for units.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of a canonical unit name such as "Kilometer".
// IDs are written into encoded series, so the mapping must stay stable.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}

// Token hashes a user-supplied unit token so that spellings which differ only
// in ASCII letter case or in '-', '_' and ' ' separators hash alike:
// "square-meter", "Square Meter" and "SquareMeter" share one Token.
//
// Token(s) equals ID(s) whenever s is already lower case and separator free.
func Token(token string) uint64 {
	var (
		buf [64]byte
		n   int
	)

	d := xxhash.New()
	for i := 0; i < len(token); i++ {
		c := token[i]
		switch {
		case c == '-' || c == '_' || c == ' ':
			continue
		case 'A' <= c && c <= 'Z':
			c += 'a' - 'A'
		}

		buf[n] = c
		n++
		if n == len(buf) {
			_, _ = d.Write(buf[:n])
			n = 0
		}
	}
	_, _ = d.Write(buf[:n])

	return d.Sum64()
}

// Normalize returns the spelling that Token hashes: ASCII letters lowered and
// '-', '_' and ' ' removed. Token(s) == ID(Normalize(s)).
func Normalize(token string) string {
	b := make([]byte, 0, len(token))
	for i := 0; i < len(token); i++ {
		c := token[i]
		switch {
		case c == '-' || c == '_' || c == ' ':
			continue
		case 'A' <= c && c <= 'Z':
			c += 'a' - 'A'
		}
		b = append(b, c)
	}

	return string(b)
}
