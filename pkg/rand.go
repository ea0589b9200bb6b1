package pkg

import (
	"math/rand"
	"strings"
)

func RandString(n int) string {
	var builder strings.Builder
	builder.Grow(n)

	const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	for range n {
		letter := letters[rand.Intn(len(letters))] //nolint:gosec
		builder.WriteByte(letter)
	}

	return builder.String()
}

// RandHex returns a 0x-prefixed hex string of n nibbles, handy for fake
// transaction hashes and addresses in tests.
func RandHex(n int) string {
	var builder strings.Builder
	builder.Grow(n + 2)
	builder.WriteString("0x")

	const digits = "0123456789abcdef"
	for range n {
		digit := digits[rand.Intn(len(digits))] //nolint:gosec
		builder.WriteByte(digit)
	}

	return builder.String()
}
