package keystore

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

const (
	seedFile   = "seed.enc"
	publicFile = "public.json"
)

// ErrNoKey is returned when the store holds no key pair yet.
var ErrNoKey = errors.New("keystore: no key pair, run keygen first")

type publicRecord struct {
	PublicKey string `json:"public_key"` // hex
}

// Store keeps one key pair under a home directory.
type Store struct {
	dir string
	mu  sync.Mutex
}

// New returns a Store rooted at dir. The directory must exist.
func New(dir string) *Store { return &Store{dir: dir} }

// Save seals the seed under the passphrase and records the public key
// alongside it.
func (s *Store) Save(passphrase string, seed, public []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	N, r, p := scryptParamsDefault()
	blob, err := encrypt(passphrase, seed, N, r, p)
	if err != nil {
		return err
	}
	if err := writeFile(filepath.Join(s.dir, seedFile), blob, 0o600); err != nil {
		return err
	}
	rec := publicRecord{PublicKey: hex.EncodeToString(public)}
	return writeJSON(filepath.Join(s.dir, publicFile), rec, 0o644)
}

// Load opens the sealed seed with the passphrase.
func (s *Store) Load(passphrase string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := os.ReadFile(filepath.Join(s.dir, seedFile))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoKey
	}
	if err != nil {
		return nil, err
	}
	return decrypt(passphrase, blob)
}

// LoadPublic returns the stored public key without needing the
// passphrase.
func (s *Store) LoadPublic() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rec publicRecord
	if err := readJSON(filepath.Join(s.dir, publicFile), &rec); err != nil {
		return nil, err
	}
	if rec.PublicKey == "" {
		return nil, ErrNoKey
	}
	return hex.DecodeString(rec.PublicKey)
}
