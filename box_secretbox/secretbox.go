// Package box_secretbox provides a crypto box backed by NaCl secretbox.
package box_secretbox

import (
	"crypto/rand"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/sha3"

	"github.com/vaultbox/go-cryptobox"
)

const (
	keySize   = 32
	nonceSize = 24
)

var _ cryptobox.Provider = Provider{}

// Provider seals with NaCl secretbox. secretbox itself has no
// associated data input, so the ad is folded into the key with
// SHAKE-256 before sealing; a mismatched ad fails authentication the
// same way a wrong key does.
type Provider struct{}

func (Provider) KeyLen() int {
	return keySize
}

func (Provider) Overhead() int {
	return nonceSize + secretbox.Overhead
}

func (Provider) Seal(key, ad, ptext []byte) ([]byte, error) {
	if len(key) != keySize {
		return nil, errors.Wrapf(cryptobox.ErrInvalidKeySize, "have %d need %d", len(key), keySize)
	}
	s := subKey(key, ad)
	nonce := [nonceSize]byte{}
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, errors.Wrap(err, "entropy source")
	}
	return secretbox.Seal(nonce[:], ptext, &nonce, &s), nil
}

func (Provider) Open(key, ad, ctext []byte) ([]byte, error) {
	if len(key) != keySize {
		return nil, errors.Wrapf(cryptobox.ErrInvalidKeySize, "have %d need %d", len(key), keySize)
	}
	if len(ctext) < nonceSize+secretbox.Overhead {
		return nil, errors.Wrap(cryptobox.ErrDecryptionFailed, "secret box too short")
	}
	s := subKey(key, ad)
	nonce := [nonceSize]byte{}
	copy(nonce[:], ctext[:nonceSize])
	ptext, ok := secretbox.Open(nil, ctext[nonceSize:], &nonce, &s)
	if !ok {
		return nil, errors.Wrap(cryptobox.ErrDecryptionFailed, "secret box was invalid")
	}
	return ptext, nil
}

func (Provider) RandomBuf(buf []byte) error {
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return errors.Wrap(err, "entropy source")
	}
	return nil
}

func subKey(key, ad []byte) (ret [keySize]byte) {
	sh := sha3.NewShake256()
	for _, x := range [][]byte{key, ad} {
		if _, err := sh.Write(x); err != nil {
			panic(err)
		}
	}
	if _, err := io.ReadFull(sh, ret[:]); err != nil {
		panic(err)
	}
	return ret
}
