// Package box_chacha20poly1305 provides a crypto box backed by
// XChaCha20-Poly1305 with a random nonce prepended to the ciphertext.
package box_chacha20poly1305

import (
	"crypto/rand"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/crypto/chacha20poly1305"

	"github.com/vaultbox/go-cryptobox"
)

var _ cryptobox.Provider = Provider{}

type Provider struct{}

func (Provider) KeyLen() int {
	return chacha20poly1305.KeySize
}

func (Provider) Overhead() int {
	return chacha20poly1305.NonceSizeX + chacha20poly1305.Overhead
}

func (Provider) Seal(key, ad, ptext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, errors.Wrap(err, "chacha20poly1305")
	}
	nonce := make([]byte, chacha20poly1305.NonceSizeX, chacha20poly1305.NonceSizeX+len(ptext)+chacha20poly1305.Overhead)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, errors.Wrap(err, "entropy source")
	}
	return aead.Seal(nonce, nonce, ptext, ad), nil
}

func (Provider) Open(key, ad, ctext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, errors.Wrap(err, "chacha20poly1305")
	}
	if len(ctext) < chacha20poly1305.NonceSizeX+chacha20poly1305.Overhead {
		return nil, errors.Wrap(cryptobox.ErrDecryptionFailed, "ciphertext too short")
	}
	nonce, box := ctext[:chacha20poly1305.NonceSizeX], ctext[chacha20poly1305.NonceSizeX:]
	ptext, err := aead.Open(nil, nonce, box, ad)
	if err != nil {
		return nil, errors.Wrap(cryptobox.ErrDecryptionFailed, err.Error())
	}
	return ptext, nil
}

func (Provider) RandomBuf(buf []byte) error {
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return errors.Wrap(err, "entropy source")
	}
	return nil
}
