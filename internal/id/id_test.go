package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashString(t *testing.T) {
	// Known values of the h*31+c hash.
	assert.Equal(t, int32(0), HashString(""))
	assert.Equal(t, int32(97), HashString("a"))
	assert.Equal(t, int32(96354), HashString("abc"))

	// Long inputs wrap at 32 bits rather than growing.
	assert.NotPanics(t, func() {
		HashString("9d2d43e1-33bb-4b5c-b5b8-f0f8f32046b1" + "aa07cd9f-09e9-4d91-a13f-7e0a4e2f22a6")
	})
}

func TestHashStringDistinct(t *testing.T) {
	assert.NotEqual(t, HashString("abc"), HashString("acb"))
}

func TestTransferKeyOrderIndependent(t *testing.T) {
	a := "9d2d43e1-33bb-4b5c-b5b8-f0f8f32046b1"
	b := "aa07cd9f-09e9-4d91-a13f-7e0a4e2f22a6"

	assert.Equal(t, TransferKey(a, b), TransferKey(b, a))
	assert.NotEqual(t, TransferKey(a, b), HashString(a))
}
