package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetenv(t *testing.T) {
	const fallback = "fallback"

	t.Run("unset key returns fallback", func(t *testing.T) {
		assert.Equal(t, fallback, Getenv("EMARK_TEST_UNSET", fallback))
	})
	t.Run("empty value wins over fallback", func(t *testing.T) {
		t.Setenv("EMARK_TEST_EMPTY", "")
		assert.Empty(t, Getenv("EMARK_TEST_EMPTY", fallback))
	})
	t.Run("set value returned", func(t *testing.T) {
		t.Setenv("EMARK_TEST_SET", "value")
		assert.Equal(t, "value", Getenv("EMARK_TEST_SET", fallback))
	})
}
