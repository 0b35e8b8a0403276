package cryptobox

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestProvider runs the conformance suite against P.
// Provider implementations should call it from their own tests.
func TestProvider[P Provider](t *testing.T) {
	var p P
	require.Greater(t, p.KeyLen(), 0)
	require.Greater(t, p.Overhead(), 0)

	newKey := func(t *testing.T) *Key[P] {
		k, err := Random[P]()
		require.NoError(t, err)
		return k
	}
	ptext := []byte("hello world")
	ad := []byte{1, 2, 3}

	t.Run("RoundTrip", func(t *testing.T) {
		k := newKey(t)
		ctext, err := Seal(k, ad, ptext)
		require.NoError(t, err)
		require.Len(t, ctext, len(ptext)+p.Overhead())
		actual, err := Open(k, ad, ctext)
		require.NoError(t, err)
		require.Equal(t, ptext, actual)
	})
	t.Run("RoundTripEmpty", func(t *testing.T) {
		k := newKey(t)
		ctext, err := Seal(k, nil, nil)
		require.NoError(t, err)
		actual, err := Open(k, nil, ctext)
		require.NoError(t, err)
		require.Empty(t, actual)
	})
	t.Run("ADMismatch", func(t *testing.T) {
		k := newKey(t)
		ctext, err := Seal(k, ad, ptext)
		require.NoError(t, err)
		_, err = Open(k, []byte{4, 5, 6}, ctext)
		require.True(t, IsErrDecryptionFailed(err), "got %v", err)
	})
	t.Run("WrongKey", func(t *testing.T) {
		k1, k2 := newKey(t), newKey(t)
		ctext, err := Seal(k1, ad, ptext)
		require.NoError(t, err)
		_, err = Open(k2, ad, ctext)
		require.True(t, IsErrDecryptionFailed(err), "got %v", err)
	})
	t.Run("Tamper", func(t *testing.T) {
		k := newKey(t)
		ctext, err := Seal(k, ad, ptext)
		require.NoError(t, err)
		for _, i := range []int{0, len(ctext) / 2, len(ctext) - 1} {
			ctext2 := append([]byte{}, ctext...)
			ctext2[i] ^= 0x01
			_, err := Open(k, ad, ctext2)
			require.True(t, IsErrDecryptionFailed(err), "flipped byte %d: got %v", i, err)
		}
	})
	t.Run("Truncate", func(t *testing.T) {
		k := newKey(t)
		ctext, err := Seal(k, ad, ptext)
		require.NoError(t, err)
		for _, n := range []int{0, 1, p.Overhead() - 1, len(ctext) - 1} {
			_, err := Open(k, ad, ctext[:n])
			require.True(t, IsErrDecryptionFailed(err), "truncated to %d: got %v", n, err)
		}
	})
	t.Run("Load", func(t *testing.T) {
		_, err := Load[P](make([]byte, p.KeyLen()-1))
		require.True(t, IsErrInvalidKeySize(err), "got %v", err)
		raw := make([]byte, p.KeyLen())
		k, err := Load[P](raw)
		require.NoError(t, err)
		require.Equal(t, raw, k.Bytes())
	})
	t.Run("Random", func(t *testing.T) {
		k1, k2 := newKey(t), newKey(t)
		require.Len(t, k1.Bytes(), p.KeyLen())
		require.False(t, k1.Equal(k2))
		buf, err := RandomVec[P](64)
		require.NoError(t, err)
		require.Len(t, buf, 64)
		require.False(t, bytes.Equal(buf, make([]byte, 64)))
	})
}
