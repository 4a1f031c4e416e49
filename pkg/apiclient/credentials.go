package apiclient

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// Credential storage keys, fixed by the persisted-state contract.
const (
	KeyAccessToken  = "accessToken"
	KeyRefreshToken = "refreshToken"
	KeySession      = "currentUser"
)

// CredentialStore is the single home for persisted auth state. The session
// store is its only writer; the HTTP client reads tokens and may clear
// everything when a refresh fails. A missing value reads as empty, never an
// error, so a concurrent clear mid-request degrades to "unauthenticated".
type CredentialStore interface {
	AccessToken() string
	RefreshToken() string
	Session() string
	SetAccessToken(token string) error
	SetTokens(access, refresh string) error
	SetSession(serialized string) error
	Clear() error
}

// MemoryStore keeps credentials in process memory. Used in tests and as a
// fallback when no credential file is configured.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore builds an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) AccessToken() string  { return s.get(KeyAccessToken) }
func (s *MemoryStore) RefreshToken() string { return s.get(KeyRefreshToken) }
func (s *MemoryStore) Session() string      { return s.get(KeySession) }

func (s *MemoryStore) SetAccessToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[KeyAccessToken] = token
	return nil
}

func (s *MemoryStore) SetTokens(access, refresh string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[KeyAccessToken] = access
	s.values[KeyRefreshToken] = refresh
	return nil
}

func (s *MemoryStore) SetSession(serialized string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[KeySession] = serialized
	return nil
}

// Clear removes everything. Tokens are never cleared independently.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = make(map[string]string)
	return nil
}

func (s *MemoryStore) get(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key]
}

// FileStore persists credentials as a JSON object in a single file.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore builds a store backed by the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) AccessToken() string  { return s.read()[KeyAccessToken] }
func (s *FileStore) RefreshToken() string { return s.read()[KeyRefreshToken] }
func (s *FileStore) Session() string      { return s.read()[KeySession] }

func (s *FileStore) SetAccessToken(token string) error {
	return s.update(func(values map[string]string) {
		values[KeyAccessToken] = token
	})
}

func (s *FileStore) SetTokens(access, refresh string) error {
	return s.update(func(values map[string]string) {
		values[KeyAccessToken] = access
		values[KeyRefreshToken] = refresh
	})
}

func (s *FileStore) SetSession(serialized string) error {
	return s.update(func(values map[string]string) {
		values[KeySession] = serialized
	})
}

// Clear truncates the whole file.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(map[string]string{})
}

func (s *FileStore) read() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	values := map[string]string{}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return values
	}
	_ = json.Unmarshal(data, &values)
	return values
}

func (s *FileStore) update(apply func(map[string]string)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	values := map[string]string{}
	if data, err := os.ReadFile(s.path); err == nil {
		_ = json.Unmarshal(data, &values)
	}
	apply(values)
	return s.write(values)
}

func (s *FileStore) write(values map[string]string) error {
	data, err := json.Marshal(values)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}
