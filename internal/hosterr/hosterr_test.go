package hosterr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsMatchesByKindNotValue(t *testing.T) {
	err := NewInvalidOtpSize(12345)
	require.True(t, errors.Is(err, NewInvalidOtpSize(0)))
	require.False(t, errors.Is(err, NewInvalidFlashSize(0)))
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("disk full")
	err := NewFileIO("flash.bin", cause)
	require.ErrorIs(t, err, cause)
}

func TestErrorMessagesIncludeContext(t *testing.T) {
	require.Contains(t, NewInvalidOtpSize(100).Error(), "100")
	require.Contains(t, NewInvalidFlashSize(100).Error(), "100")
	require.Contains(t, NewFileIO("x.bin", errors.New("boom")).Error(), "x.bin")
}
