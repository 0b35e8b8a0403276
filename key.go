package cryptobox

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"
)

// Key is a secret key for the crypto box provided by P.
//
// The binding to P is a compile time property only; it adds no fields
// and no runtime checks. Keys for different providers are distinct
// types and cannot be mixed up.
//
// A Key owns its byte buffer exclusively. It provides no internal
// locking; callers sharing a Key across goroutines must synchronize
// externally.
type Key[P Provider] struct {
	raw       []byte
	onDestroy func([]byte)
	destroyed bool
}

// Random generates a key using P's secure randomness source.
func Random[P Provider]() (*Key[P], error) {
	var p P
	raw, err := RandomVec[P](p.KeyLen())
	if err != nil {
		return nil, err
	}
	return &Key[P]{raw: raw}, nil
}

// Load wraps raw as a key for P, taking ownership of the slice.
// It fails unless len(raw) == P's KeyLen.
func Load[P Provider](raw []byte) (*Key[P], error) {
	var p P
	if len(raw) != p.KeyLen() {
		return nil, errors.Wrapf(ErrInvalidKeySize, "have %d need %d", len(raw), p.KeyLen())
	}
	return &Key[P]{raw: raw}, nil
}

// OnDestroy registers fn to be called by Destroy with the still
// populated buffer, so the secret can be scrubbed or archived before
// the memory is released. A later call replaces the previous hook.
//
// fn must not block indefinitely; it may run during unwinding.
func (k *Key[P]) OnDestroy(fn func([]byte)) {
	k.onDestroy = fn
}

// Bytes returns a copy of the key material.
func (k *Key[P]) Bytes() []byte {
	ret := make([]byte, len(k.raw))
	copy(ret, k.raw)
	return ret
}

// Destroy releases the key. If a hook was registered with OnDestroy it
// runs exactly once, with mutable access to the buffer; without a hook
// there is no guarantee the memory is zeroed before reuse. Destroy is
// idempotent, and the owner should usually arrange it with defer.
//
// Seal and Open fail with ErrKeyDestroyed afterwards.
func (k *Key[P]) Destroy() {
	if k.destroyed {
		return
	}
	k.destroyed = true
	if k.onDestroy != nil {
		k.onDestroy(k.raw)
	}
	k.raw = nil
}

// Clone returns an independent Key with a copy of the key material.
// The clone inherits the destroy hook; original and clone each run it
// on their own destruction.
func (k *Key[P]) Clone() *Key[P] {
	raw := make([]byte, len(k.raw))
	copy(raw, k.raw)
	return &Key[P]{
		raw:       raw,
		onDestroy: k.onDestroy,
		destroyed: k.destroyed,
	}
}

// Equal reports whether both keys hold the same bytes. Keys for
// different providers are never comparable; that is a compile error.
func (k *Key[P]) Equal(other *Key[P]) bool {
	return bytes.Equal(k.raw, other.raw)
}

// Hash returns a SHAKE-256 digest of the key material, suitable as a
// map key or identifier.
func (k *Key[P]) Hash() (ret [32]byte) {
	sha3.ShakeSum256(ret[:], k.raw)
	return ret
}

// MarshalBinary returns the raw key bytes. The destroy hook is never
// part of the serialized form and must be re-attached after
// UnmarshalBinary if needed.
func (k *Key[P]) MarshalBinary() ([]byte, error) {
	if k.destroyed {
		return nil, ErrKeyDestroyed
	}
	return k.Bytes(), nil
}

// UnmarshalBinary sets the key material from data, which must be
// exactly KeyLen bytes. data is copied.
func (k *Key[P]) UnmarshalBinary(data []byte) error {
	var p P
	if len(data) != p.KeyLen() {
		return errors.Wrapf(ErrInvalidKeySize, "have %d need %d", len(data), p.KeyLen())
	}
	k.raw = make([]byte, len(data))
	copy(k.raw, data)
	k.destroyed = false
	return nil
}

// String never includes the key material.
func (k *Key[P]) String() string {
	return fmt.Sprintf("Key(%d bytes)", len(k.raw))
}

func (k *Key[P]) use() ([]byte, error) {
	if k.destroyed {
		return nil, ErrKeyDestroyed
	}
	return k.raw, nil
}
