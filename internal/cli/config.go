package cli

import (
	"os"
	"path/filepath"
)

// Config holds CLI configuration
type Config struct {
	ServerURL   string
	SessionID   string
	SessionFile string
	Output      string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:   getEnvOrDefault("TEAMCTL_SERVER", "http://localhost:8080"),
		SessionID:   os.Getenv("TEAMCTL_SESSION"),
		SessionFile: getEnvOrDefault("TEAMCTL_SESSION_FILE", defaultSessionFile()),
		Output:      "text",
	}
}

// LoadSession loads the session id from file if not already set
func (c *Config) LoadSession() error {
	if c.SessionID != "" {
		return nil
	}

	data, err := os.ReadFile(c.SessionFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // No session file is fine
		}
		return err
	}

	c.SessionID = string(data)
	return nil
}

// SaveSession saves the session id to the session file
func (c *Config) SaveSession(id string) error {
	c.SessionID = id

	dir := filepath.Dir(c.SessionFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(c.SessionFile, []byte(id), 0600)
}

// ClearSession removes the stored session file
func (c *Config) ClearSession() error {
	c.SessionID = ""

	err := os.Remove(c.SessionFile)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".teamctl/session"
	}
	return filepath.Join(home, ".teamctl", "session")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
