package secretscan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/repolint/internal/config"
	"github.com/dbsmedya/repolint/internal/findings"
)

func newTestScanner(t *testing.T) *Scanner {
	t.Helper()
	s, err := NewScanner(config.DefaultConfig().Secrets, nil)
	require.NoError(t, err)
	return s
}

func TestNewScannerValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*config.SecretsConfig)
		expectErr string
	}{
		{
			name:      "empty keywords",
			mutate:    func(c *config.SecretsConfig) { c.Keywords = nil },
			expectErr: "keyword set is empty",
		},
		{
			name:      "zero min length",
			mutate:    func(c *config.SecretsConfig) { c.MinLength = 0 },
			expectErr: "min length must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig().Secrets
			tt.mutate(&cfg)
			s, err := NewScanner(cfg, nil)
			assert.Nil(t, s)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectErr)
		})
	}
}

func TestCleanFileHasNoFindings(t *testing.T) {
	s := newTestScanner(t)

	src := []byte(`package app

import "os"

func run() error {
	addr := "localhost:8080"
	name := "analytics fixture generator"
	_ = os.Getenv("HOME")
	return nil
}
`)

	assert.Empty(t, s.ScanFile("app.go", src))
}

func TestLiteralTokenFlaggedOnce(t *testing.T) {
	s := newTestScanner(t)

	src := []byte(`package app

func connect() {
	token := "abcdef1234567890"
	_ = token
}
`)

	results := s.ScanFile("app.go", src)
	require.Len(t, results, 1)

	f := results[0]
	assert.Equal(t, "token", f.Name)
	assert.Equal(t, 4, f.Line)
	assert.Equal(t, "abcdef…", f.Sample)
	assert.Equal(t, findings.SeverityError, f.Severity)
}

func TestDynamicLookupNeverFlagged(t *testing.T) {
	s := newTestScanner(t)

	src := []byte(`package app

import "os"

var token = os.Getenv("TOKEN")

func init() {
	password := os.Getenv("PASSWORD")
	secret := config.Secret
	_, _ = password, secret
}
`)

	assert.Empty(t, s.ScanFile("app.go", src))
}

func TestPlaceholderNeverFlagged(t *testing.T) {
	s := newTestScanner(t)

	src := []byte(`package app

var password = "***MASKED***"
`)

	assert.Empty(t, s.ScanFile("app.go", src))
}

func TestShortAndSpacedValuesNotFlagged(t *testing.T) {
	s := newTestScanner(t)

	src := []byte(`package app

var (
	password = "hunter2"
	secret   = "this is a human readable sentence"
	apikey   = ""
)
`)

	assert.Empty(t, s.ScanFile("app.go", src))
}

func TestAttributeTargetFlagged(t *testing.T) {
	s := newTestScanner(t)

	src := []byte(`package app

func setup(c *Config) {
	c.APIClient.Token = "sk-abcdef1234567890xyz"
}
`)

	results := s.ScanFile("app.go", src)
	require.Len(t, results, 1)
	assert.Equal(t, "Token", results[0].Name)
	assert.Equal(t, "sk-abc…", results[0].Sample)
}

func TestConstructorCompositeLiteralFlagged(t *testing.T) {
	s := newTestScanner(t)

	src := []byte(`package app

func setup() {
	c := OpenAI(Options{
		APIKey:  "sk-proj-abcdef12345678",
		Timeout: 30,
	})
	_ = c
}
`)

	results := s.ScanFile("app.go", src)
	require.Len(t, results, 1)
	assert.Equal(t, "APIKey", results[0].Name)
}

func TestConstructorStringArgFlagged(t *testing.T) {
	s := newTestScanner(t)

	src := []byte(`package app

func setup() {
	c := client.from_api_key("abcdefghij1234567890")
	_ = c
}
`)

	results := s.ScanFile("app.go", src)
	require.Len(t, results, 1)
	assert.Equal(t, "from_api_key", results[0].Name)
}

func TestNonConstructorCallNotFlagged(t *testing.T) {
	s := newTestScanner(t)

	src := []byte(`package app

func setup() {
	log.Println("abcdefghij1234567890")
}
`)

	assert.Empty(t, s.ScanFile("app.go", src))
}

func TestUnparsableFileSkipped(t *testing.T) {
	s := newTestScanner(t)

	assert.Empty(t, s.ScanFile("broken.go", []byte("this is not go source {{{")))
}

func TestSample(t *testing.T) {
	assert.Equal(t, "abcdef…", Sample("abcdef1234567890"))
	assert.Equal(t, "abc…", Sample("abc"))
}

func TestScanDir(t *testing.T) {
	s := newTestScanner(t)

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "vendor"), 0755))

	files := map[string]string{
		"main.go": `package main

var apiKey = "abcdef1234567890"
`,
		"clean.go": `package main

var addr = "localhost:9090"
`,
		"notes.txt": `token = "abcdef1234567890"`,
		"vendor/dep.go": `package dep

var secret = "abcdef1234567890"
`,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}

	report, err := s.ScanDir(dir, []string{"vendor"})
	require.NoError(t, err)

	// Only main.go is flagged: clean.go has no secret, notes.txt is not Go
	// source, vendor/ is excluded.
	assert.Equal(t, 1, report.Len())
	assert.True(t, report.HasErrors())
	assert.Equal(t, []string{filepath.Join(dir, "main.go")}, report.Files())
}

func TestScanDirMissingRoot(t *testing.T) {
	s := newTestScanner(t)

	_, err := s.ScanDir(filepath.Join(t.TempDir(), "nope"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not accessible")
}
