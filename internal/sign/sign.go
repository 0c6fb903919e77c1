// Package sign produces and checks detached OpenPGP signatures over reports.
package sign

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ProtonMail/go-crypto/openpgp"
)

// Signer holds a private key that can sign report bytes.
type Signer struct {
	entity *openpgp.Entity
}

// NewSigner wraps an entity that carries a decrypted private key.
func NewSigner(e *openpgp.Entity) (*Signer, error) {
	if e == nil || e.PrivateKey == nil {
		return nil, errors.New("sign.NewSigner: entity has no private key")
	}
	if e.PrivateKey.Encrypted {
		return nil, errors.New("sign.NewSigner: private key is passphrase protected")
	}
	return &Signer{entity: e}, nil
}

// LoadSigner reads the first private key from an armored or binary keyring file.
func LoadSigner(path string) (*Signer, error) {
	entities, err := readKeyRing(path)
	if err != nil {
		return nil, fmt.Errorf("sign.LoadSigner: %w", err)
	}
	for _, e := range entities {
		if e.PrivateKey != nil {
			return NewSigner(e)
		}
	}
	return nil, fmt.Errorf("sign.LoadSigner: no private key in %s", path)
}

// Fingerprint returns the signing key's fingerprint in upper-case hex.
func (s *Signer) Fingerprint() string {
	return fmt.Sprintf("%X", s.entity.PrimaryKey.Fingerprint)
}

// Sign returns an armored detached signature over data.
func (s *Signer) Sign(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := openpgp.ArmoredDetachSign(&buf, s.entity, bytes.NewReader(data), nil); err != nil {
		return nil, fmt.Errorf("sign.Sign: %w", err)
	}
	return buf.Bytes(), nil
}

// Verify checks an armored or binary detached signature over data against the
// public keys in pubkeyPath, returning the signer's fingerprint.
func Verify(pubkeyPath string, data, sig []byte) (string, error) {
	keyring, err := readKeyRing(pubkeyPath)
	if err != nil {
		return "", fmt.Errorf("sign.Verify: %w", err)
	}

	var signer *openpgp.Entity
	if isArmored(sig) {
		signer, err = openpgp.CheckArmoredDetachedSignature(keyring, bytes.NewReader(data), bytes.NewReader(sig), nil)
	} else {
		signer, err = openpgp.CheckDetachedSignature(keyring, bytes.NewReader(data), bytes.NewReader(sig), nil)
	}
	if err != nil {
		return "", fmt.Errorf("sign.Verify: signature verification failed: %w", err)
	}
	return fmt.Sprintf("%X", signer.PrimaryKey.Fingerprint), nil
}

func readKeyRing(path string) (openpgp.EntityList, error) {
	//nolint:gosec // G304: key path is supplied by the operator
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open key file: %w", err)
	}
	//nolint:errcheck // Defer close
	defer f.Close()

	entities, err := openpgp.ReadArmoredKeyRing(f)
	if err != nil {
		if _, seekErr := f.Seek(0, io.SeekStart); seekErr != nil {
			return nil, fmt.Errorf("failed to reset key file: %w", seekErr)
		}
		entities, err = openpgp.ReadKeyRing(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read key: %w", err)
		}
	}
	if len(entities) == 0 {
		return nil, fmt.Errorf("no keys found in %s", path)
	}
	return entities, nil
}

func isArmored(sig []byte) bool {
	return bytes.HasPrefix(bytes.TrimSpace(sig), []byte("-----BEGIN PGP SIGNATURE-----"))
}
