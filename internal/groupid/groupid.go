// Package groupid generates the random numeric identifiers assigned to
// groups. Ids always have exactly Digits decimal digits with a nonzero
// leading digit, drawn from crypto/rand. Uniqueness is not guaranteed here;
// callers check for collisions and the primary key constraint is the final
// arbiter under concurrent creation.
package groupid

import (
	"crypto/rand"
	"strconv"
)

// Digits is the number of decimal digits in a generated group id.
const Digits = 10

var (
	leadChars  = []byte("123456789")
	digitChars = []byte("0123456789")
)

// New returns a fresh random group id.
func New() uint64 {
	buf := make([]byte, 0, Digits)
	buf = append(buf, pick(leadChars))

	for i := 1; i < Digits; i++ {
		buf = append(buf, pick(digitChars))
	}

	id, err := strconv.ParseUint(string(buf), 10, 64)
	if err != nil {
		// unreachable: buf only ever holds decimal digits
		panic("groupid: generated id is not numeric: " + err.Error())
	}

	return id
}

// pick returns one uniformly random byte out of chars. Random bytes above
// the largest multiple of len(chars) are rejected to avoid modulo bias.
func pick(chars []byte) byte {
	clen := len(chars)
	maxRb := 255 - (256 % clen)

	buf := make([]byte, 1)

	for {
		if _, err := rand.Read(buf); err != nil {
			panic("groupid: error reading random bytes: " + err.Error())
		}

		c := int(buf[0])
		if c > maxRb {
			continue
		}

		return chars[c%clen]
	}
}
