package cryptobox

import (
	"errors"
)

var (
	// ErrInvalidKeySize means key bytes of the wrong length were supplied to Load.
	ErrInvalidKeySize = errors.New("cryptobox: key has invalid size")
	// ErrDecryptionFailed means a provider refused to open a ciphertext:
	// it was tampered with, truncated, or sealed under a different key or ad.
	ErrDecryptionFailed = errors.New("cryptobox: decryption failed")
	// ErrInvalidEntry means decryption succeeded but the plaintext does not
	// convert to the expected payload type.
	ErrInvalidEntry = errors.New("cryptobox: invalid entry")
	// ErrKeyDestroyed means the key was used after Destroy.
	ErrKeyDestroyed = errors.New("cryptobox: key has been destroyed")
)

func IsErrInvalidKeySize(err error) bool {
	return errors.Is(err, ErrInvalidKeySize)
}

func IsErrDecryptionFailed(err error) bool {
	return errors.Is(err, ErrDecryptionFailed)
}

func IsErrInvalidEntry(err error) bool {
	return errors.Is(err, ErrInvalidEntry)
}

func IsErrKeyDestroyed(err error) bool {
	return errors.Is(err, ErrKeyDestroyed)
}
