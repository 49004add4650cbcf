package database

import (
	"strings"
	"testing"

	"github.com/dbsmedya/repolint/internal/config"
)

func TestBuildDSN(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *config.DatabaseConfig
		expected string
	}{
		{
			name: "basic DSN",
			cfg: &config.DatabaseConfig{
				Host:     "localhost",
				Port:     3306,
				User:     "root",
				Password: "secret",
				Database: "fixtures",
				TLS:      "preferred",
			},
			expected: "root:secret@tcp(localhost:3306)/fixtures?parseTime=true&multiStatements=true&tls=preferred",
		},
		{
			name: "DSN without database",
			cfg: &config.DatabaseConfig{
				Host:     "localhost",
				Port:     3306,
				User:     "root",
				Password: "secret",
				TLS:      "preferred",
			},
			expected: "root:secret@tcp(localhost:3306)/?parseTime=true&multiStatements=true&tls=preferred",
		},
		{
			name: "DSN with TLS disabled",
			cfg: &config.DatabaseConfig{
				Host:     "localhost",
				Port:     3306,
				User:     "root",
				Password: "secret",
				Database: "fixtures",
				TLS:      "disable",
			},
			expected: "root:secret@tcp(localhost:3306)/fixtures?parseTime=true&multiStatements=true&tls=false",
		},
		{
			name: "DSN with TLS required",
			cfg: &config.DatabaseConfig{
				Host:     "remote-host",
				Port:     3307,
				User:     "admin",
				Password: "secret",
				Database: "fixtures",
				TLS:      "required",
			},
			expected: "admin:secret@tcp(remote-host:3307)/fixtures?parseTime=true&multiStatements=true&tls=true",
		},
		{
			name: "empty TLS defaults to preferred",
			cfg: &config.DatabaseConfig{
				Host:     "localhost",
				Port:     3306,
				User:     "root",
				Password: "",
				Database: "fixtures",
			},
			expected: "root:@tcp(localhost:3306)/fixtures?parseTime=true&multiStatements=true&tls=preferred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := BuildDSN(tt.cfg)
			if result != tt.expected {
				t.Errorf("BuildDSN() = %q, expected %q", result, tt.expected)
			}
		})
	}
}

func TestBuildDSN_RequiredParams(t *testing.T) {
	dsn := BuildDSN(&config.DatabaseConfig{
		Host: "localhost", Port: 3306, User: "root", Database: "fixtures",
	})

	for _, param := range []string{"parseTime=true", "multiStatements=true"} {
		if !strings.Contains(dsn, param) {
			t.Errorf("BuildDSN() should contain %q", param)
		}
	}
}

func TestNewManager(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:     "localhost",
		Port:     3306,
		User:     "root",
		Password: "secret",
		Database: "fixtures",
	}

	manager := NewManager(cfg)
	if manager == nil {
		t.Fatal("NewManager() returned nil")
	}
	if manager.config != cfg {
		t.Error("manager.config should point to provided config")
	}
	if manager.DB != nil {
		t.Error("DB should be nil before Connect()")
	}
}

func TestManagerCloseWithoutConnect(t *testing.T) {
	manager := NewManager(&config.DatabaseConfig{Host: "localhost"})

	// Should not panic when closing unconnected manager
	if err := manager.Close(); err != nil {
		t.Errorf("Close() returned error for unconnected manager: %v", err)
	}
}

func TestManagerPingWithoutConnect(t *testing.T) {
	manager := NewManager(&config.DatabaseConfig{Host: "localhost"})

	if err := manager.Ping(t.Context()); err == nil {
		t.Error("Ping() should fail before Connect()")
	}
}
