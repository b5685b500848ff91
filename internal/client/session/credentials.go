package session

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// CredentialStore persists the access token between CLI invocations, the
// same way the web client keeps it in local storage.
type CredentialStore struct {
	Path string
}

type credentialFile struct {
	AccessToken string `json:"access_token"`
}

func NewCredentialStore(path string) *CredentialStore {
	return &CredentialStore{Path: path}
}

// DefaultCredentialPath resolves to ~/.config/astro-observer/credentials.json.
func DefaultCredentialPath() string {
	if dir := os.Getenv("ASTRO_CONFIG_DIR"); dir != "" {
		return filepath.Join(dir, "credentials.json")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "credentials.json"
	}
	return filepath.Join(home, ".config", "astro-observer", "credentials.json")
}

func (s *CredentialStore) Read() string {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return ""
	}
	var f credentialFile
	if err := json.Unmarshal(data, &f); err != nil {
		return ""
	}
	return f.AccessToken
}

func (s *CredentialStore) Write(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(credentialFile{AccessToken: token})
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, data, 0o600)
}

func (s *CredentialStore) Clear() {
	_ = os.Remove(s.Path)
}
