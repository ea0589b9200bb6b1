package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandString(t *testing.T) {
	for _, length := range []int{0, 1, 8, 40} {
		assert.Len(t, RandString(length), length)
	}
}

func TestRandHex(t *testing.T) {
	str := RandHex(64)
	assert.Len(t, str, 66)
	assert.Regexp(t, "^0x[0-9a-f]{64}$", str)
}
