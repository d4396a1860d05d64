package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"sync"

	"gocloud.dev/secrets"

	cryptoDomain "github.com/fintechx/panvault/internal/crypto/domain"

	// Register the supported secrets keeper drivers.
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// StaticKeyProvider serves fixed key material handed over at construction.
// Intended for development, tests, and hosts that manage keys themselves.
type StaticKeyProvider struct {
	key *cryptoDomain.KeyMaterial
}

// NewStaticKeyProvider creates a provider around caller-supplied key material.
func NewStaticKeyProvider(key *cryptoDomain.KeyMaterial) *StaticKeyProvider {
	return &StaticKeyProvider{key: key}
}

// NewStaticKeyProviderFromBase64 decodes base64 key bytes into a provider.
func NewStaticKeyProviderFromBase64(encoded string, version int) (*StaticKeyProvider, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode key material: %w", err)
	}
	defer cryptoDomain.Zero(raw)

	key, err := cryptoDomain.NewKeyMaterial(raw, version)
	if err != nil {
		return nil, err
	}
	return &StaticKeyProvider{key: key}, nil
}

// CurrentKey returns the fixed key material.
func (p *StaticKeyProvider) CurrentKey(_ context.Context) (*cryptoDomain.KeyMaterial, error) {
	return p.key, nil
}

// CurrentVersion returns the fixed key's version.
func (p *StaticKeyProvider) CurrentVersion(_ context.Context) (int, error) {
	return p.key.Version(), nil
}

// Close scrubs the held key material.
func (p *StaticKeyProvider) Close() error {
	p.key.Destroy()
	return nil
}

// KeeperKeyProvider unwraps key material through a gocloud.dev secrets keeper
// (e.g., hashivault://, base64key://). The wrapped ciphertext is supplied at
// construction; the keeper decrypts it on first use and the plaintext copy is
// cached for the provider's lifetime, then scrubbed on Close.
type KeeperKeyProvider struct {
	keeper  *secrets.Keeper
	wrapped []byte
	version int

	mu  sync.Mutex
	key *cryptoDomain.KeyMaterial
}

// NewKeeperKeyProvider opens the keeper at keyURI. The wrapped parameter is
// the keeper-encrypted key material.
func NewKeeperKeyProvider(
	ctx context.Context,
	keyURI string,
	wrapped []byte,
	version int,
) (*KeeperKeyProvider, error) {
	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open secrets keeper: %w", err)
	}
	return &KeeperKeyProvider{keeper: keeper, wrapped: wrapped, version: version}, nil
}

// CurrentKey unwraps and returns the key material.
func (p *KeeperKeyProvider) CurrentKey(ctx context.Context) (*cryptoDomain.KeyMaterial, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.key != nil {
		return p.key, nil
	}

	raw, err := p.keeper.Decrypt(ctx, p.wrapped)
	if err != nil {
		return nil, fmt.Errorf("failed to unwrap key material: %w", err)
	}
	defer cryptoDomain.Zero(raw)

	key, err := cryptoDomain.NewKeyMaterial(raw, p.version)
	if err != nil {
		return nil, err
	}

	p.key = key
	return p.key, nil
}

// CurrentVersion returns the declared key version.
func (p *KeeperKeyProvider) CurrentVersion(_ context.Context) (int, error) {
	return p.version, nil
}

// Close scrubs the unwrapped key copy and closes the keeper.
func (p *KeeperKeyProvider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.key != nil {
		p.key.Destroy()
		p.key = nil
	}
	return p.keeper.Close()
}
