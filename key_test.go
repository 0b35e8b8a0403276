package cryptobox_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vaultbox/go-cryptobox"
	"github.com/vaultbox/go-cryptobox/box_chacha20poly1305"
)

type provider = box_chacha20poly1305.Provider

func TestLoad(t *testing.T) {
	keyLen := provider{}.KeyLen()

	_, err := cryptobox.Load[provider](make([]byte, keyLen-1))
	require.True(t, cryptobox.IsErrInvalidKeySize(err), "got %v", err)
	_, err = cryptobox.Load[provider](make([]byte, keyLen+1))
	require.True(t, cryptobox.IsErrInvalidKeySize(err), "got %v", err)

	raw := bytes.Repeat([]byte{0xA5}, keyLen)
	k, err := cryptobox.Load[provider](raw)
	require.NoError(t, err)
	require.Equal(t, raw, k.Bytes())
}

func TestRandom(t *testing.T) {
	k1, err := cryptobox.Random[provider]()
	require.NoError(t, err)
	k2, err := cryptobox.Random[provider]()
	require.NoError(t, err)
	require.Len(t, k1.Bytes(), provider{}.KeyLen())
	require.False(t, k1.Equal(k2))
}

func TestCloneEqualHash(t *testing.T) {
	k, err := cryptobox.Random[provider]()
	require.NoError(t, err)
	k2 := k.Clone()
	require.True(t, k.Equal(k2))
	require.Equal(t, k.Hash(), k2.Hash())

	// clones are independent buffers
	loaded, err := cryptobox.Load[provider](k.Bytes())
	require.NoError(t, err)
	require.True(t, k.Equal(loaded))
	require.Equal(t, k.Hash(), loaded.Hash())
}

func TestDestroyHook(t *testing.T) {
	k, err := cryptobox.Random[provider]()
	require.NoError(t, err)
	want := k.Bytes()

	var calls int
	k.OnDestroy(func(buf []byte) {
		calls++
		// the buffer is still populated when the hook runs
		require.Equal(t, want, buf)
		for i := range buf {
			buf[i] = 0
		}
	})
	k.Destroy()
	require.Equal(t, 1, calls)
	k.Destroy()
	require.Equal(t, 1, calls)

	_, err = cryptobox.Seal(k, nil, []byte("x"))
	require.True(t, cryptobox.IsErrKeyDestroyed(err), "got %v", err)
	_, err = cryptobox.Open(k, nil, []byte("x"))
	require.True(t, cryptobox.IsErrKeyDestroyed(err), "got %v", err)
}

func TestDestroyWithoutHook(t *testing.T) {
	k, err := cryptobox.Random[provider]()
	require.NoError(t, err)
	k.Destroy()
	_, err = cryptobox.Seal(k, nil, nil)
	require.True(t, cryptobox.IsErrKeyDestroyed(err), "got %v", err)
}

func TestHookReplaced(t *testing.T) {
	k, err := cryptobox.Random[provider]()
	require.NoError(t, err)
	var first, second int
	k.OnDestroy(func([]byte) { first++ })
	k.OnDestroy(func([]byte) { second++ })
	k.Destroy()
	require.Equal(t, 0, first)
	require.Equal(t, 1, second)
}

func TestCloneCarriesHook(t *testing.T) {
	k, err := cryptobox.Random[provider]()
	require.NoError(t, err)
	var calls int
	k.OnDestroy(func([]byte) { calls++ })

	k2 := k.Clone()
	require.Equal(t, 0, calls)
	k.Destroy()
	k2.Destroy()
	require.Equal(t, 2, calls)
}

func TestBytesIsACopy(t *testing.T) {
	k, err := cryptobox.Random[provider]()
	require.NoError(t, err)
	b := k.Bytes()
	for i := range b {
		b[i] = 0xFF
	}
	require.NotEqual(t, b, k.Bytes())
}

func TestKeyBinary(t *testing.T) {
	k, err := cryptobox.Random[provider]()
	require.NoError(t, err)
	k.OnDestroy(func([]byte) {})

	data, err := k.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, k.Bytes(), data)

	var k2 cryptobox.Key[provider]
	require.NoError(t, k2.UnmarshalBinary(data))
	require.True(t, k.Equal(&k2))

	require.Error(t, k2.UnmarshalBinary(data[:len(data)-1]))

	k.Destroy()
	_, err = k.MarshalBinary()
	require.True(t, cryptobox.IsErrKeyDestroyed(err), "got %v", err)
}

func TestStringRedacted(t *testing.T) {
	k, err := cryptobox.Random[provider]()
	require.NoError(t, err)
	s := fmt.Sprint(k)
	require.NotContains(t, s, fmt.Sprintf("%x", k.Bytes()))
	require.NotContains(t, s, fmt.Sprintf("%v", k.Bytes()))
	require.Equal(t, "Key(32 bytes)", s)
}
