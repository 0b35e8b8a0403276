// Package cryptobox provides an abstraction for authenticated symmetric
// encryption ("crypto box") and a secret key container bound to a single
// cipher at compile time.
//
// A Provider supplies the cipher: seal, open, and secure randomness.
// Keys are parameterized by their Provider, so a key generated for one
// cipher cannot be passed to another; the binding is checked by the type
// system and costs nothing at runtime.
package cryptobox

import (
	"encoding"
)

// Provider is the capability a concrete cipher backend must implement.
// See NaCl's secretbox for the canonical example of a crypto box.
//
// Implementations must be meaningful as their zero value; the key
// container instantiates them internally.
type Provider interface {
	// KeyLen returns the exact byte length of a key for this box.
	KeyLen() int
	// Overhead is the ciphertext_size - plaintext_size
	Overhead() int
	// Seal creates a confidential and authenticated ciphertext for ptext,
	// binding ad.
	Seal(key, ad, ptext []byte) ([]byte, error)
	// Open authenticates and decrypts ctext, or returns an error.
	// It must fail on any tampering, truncation, or mismatched ad,
	// reporting the failure by wrapping ErrDecryptionFailed.
	Open(key, ad, ctext []byte) ([]byte, error)
	// RandomBuf fills buf with cryptographically secure random bytes.
	RandomBuf(buf []byte) error
}

// RandomVec returns n secure random bytes from P's randomness source.
func RandomVec[P Provider](n int) ([]byte, error) {
	var p P
	buf := make([]byte, n)
	if err := p.RandomBuf(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// Seal encrypts ptext under k, binding ad into the authentication tag.
func Seal[P Provider](k *Key[P], ad, ptext []byte) ([]byte, error) {
	raw, err := k.use()
	if err != nil {
		return nil, err
	}
	var p P
	return p.Seal(raw, ad, ptext)
}

// Open decrypts ctext produced by Seal under the same key and ad.
func Open[P Provider](k *Key[P], ad, ctext []byte) ([]byte, error) {
	raw, err := k.use()
	if err != nil {
		return nil, err
	}
	var p P
	return p.Open(raw, ad, ctext)
}

// Encrypt seals ptext and returns the ciphertext as C.
// C can be any type whose underlying type is []byte.
func Encrypt[C ~[]byte, P Provider](k *Key[P], ad, ptext []byte) (C, error) {
	ctext, err := Seal(k, ad, ptext)
	if err != nil {
		var zero C
		return zero, err
	}
	return C(ctext), nil
}

// Decrypt opens ctext and converts the plaintext into a T using parse.
//
// A failure from the provider propagates unchanged: the data was
// tampered with or sealed under a different key or ad. A failure from
// parse is reported as ErrInvalidEntry: the data was authentic but does
// not have the expected structure.
func Decrypt[T any, C ~[]byte, P Provider](k *Key[P], ad []byte, ctext C, parse func([]byte) (T, error)) (T, error) {
	var zero T
	ptext, err := Open(k, ad, []byte(ctext))
	if err != nil {
		return zero, err
	}
	ret, err := parse(ptext)
	if err != nil {
		return zero, ErrInvalidEntry
	}
	return ret, nil
}

// EncryptBinary seals the binary encoding of m and returns the
// ciphertext as C.
func EncryptBinary[C ~[]byte, P Provider](k *Key[P], ad []byte, m encoding.BinaryMarshaler) (C, error) {
	var zero C
	ptext, err := m.MarshalBinary()
	if err != nil {
		return zero, err
	}
	return Encrypt[C, P](k, ad, ptext)
}

// DecryptBinary opens ctext and unmarshals the plaintext into out.
// An unmarshaling failure is reported as ErrInvalidEntry.
func DecryptBinary[C ~[]byte, P Provider](k *Key[P], ad []byte, ctext C, out encoding.BinaryUnmarshaler) error {
	ptext, err := Open(k, ad, []byte(ctext))
	if err != nil {
		return err
	}
	if err := out.UnmarshalBinary(ptext); err != nil {
		return ErrInvalidEntry
	}
	return nil
}
