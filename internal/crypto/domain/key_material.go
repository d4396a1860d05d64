package domain

// KeyMaterial is an opaque, externally supplied 256-bit secret with a version
// tag. The core never generates or persists key material; the constructor
// copies the caller's bytes so the caller may scrub its own buffer
// immediately, and Destroy scrubs the internal copy.
type KeyMaterial struct {
	key     []byte
	version int
}

// NewKeyMaterial copies key bytes into a KeyMaterial. Returns
// ErrInvalidKeySize unless the key is exactly KeySize bytes.
func NewKeyMaterial(key []byte, version int) (*KeyMaterial, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeySize
	}
	k := make([]byte, KeySize)
	copy(k, key)
	return &KeyMaterial{key: k, version: version}, nil
}

// Bytes exposes the internal key bytes for cipher construction. Callers must
// not retain or mutate the slice; use Destroy when the key's lifetime ends.
func (k *KeyMaterial) Bytes() []byte {
	return k.key
}

// Version returns the caller-declared key version, recorded with vault
// entries so stale blobs can be detected after rotation.
func (k *KeyMaterial) Version() int {
	return k.version
}

// Destroy zeroes the internal key copy. The KeyMaterial must not be used
// afterward.
func (k *KeyMaterial) Destroy() {
	Zero(k.key)
}
