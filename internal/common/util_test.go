package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandByteArray(t *testing.T) {
	a := GenerateRandByteArray(32)
	b := GenerateRandByteArray(32)

	require.Len(t, a, 32)
	require.Len(t, b, 32)
	assert.NotEqual(t, a, b, "two 32-byte random buffers should differ")
}

func TestWipeByteArray(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	WipeByteArray(buf)
	assert.Equal(t, []byte{0, 0, 0, 0, 0}, buf)

	assert.NotPanics(t, func() { WipeByteArray(nil) })
}

func TestErrors_MatchThroughWrapping(t *testing.T) {
	sentinels := []error{
		ErrorNotFound,
		ErrorAlreadyExists,
		ErrorInvalidCredentials,
		ErrorInvalidToken,
		ErrorInactiveUser,
		ErrorForbidden,
		ErrorInvalidArgument,
		ErrorInternal,
	}

	for _, s := range sentinels {
		wrapped := fmt.Errorf("layer: %w", s)
		assert.True(t, errors.Is(wrapped, s), s.Error())
		for _, other := range sentinels {
			if other != s {
				assert.False(t, errors.Is(wrapped, other), "%v must not match %v", s, other)
			}
		}
	}
}
