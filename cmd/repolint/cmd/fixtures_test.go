package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixturesCommandStructure(t *testing.T) {
	assert.NotNil(t, fixturesCmd)
	assert.Equal(t, "fixtures", fixturesCmd.Name())

	names := make(map[string]bool)
	for _, sub := range fixturesCmd.Commands() {
		names[sub.Name()] = true
	}
	for _, expected := range []string{"generate", "load", "answer"} {
		assert.True(t, names[expected], "missing subcommand %s", expected)
	}
}

func TestRunFixturesGenerate(t *testing.T) {
	base := t.TempDir()
	writeTestConfig(t, base)

	originalOut := fixturesOut
	originalSeed := fixturesSeed
	defer func() {
		fixturesOut = originalOut
		fixturesSeed = originalSeed
	}()
	fixturesOut = filepath.Join(base, "out")
	fixturesSeed = 7

	var buf bytes.Buffer
	fixturesGenerateCmd.SetOut(&buf)
	fixturesGenerateCmd.SetErr(&buf)

	require.NoError(t, runFixturesGenerate(fixturesGenerateCmd, nil))

	for _, name := range []string{"users.csv", "products.csv", "orders.csv", "order_items.csv"} {
		_, err := os.Stat(filepath.Join(fixturesOut, name))
		assert.NoError(t, err, name)
	}
	assert.Contains(t, buf.String(), "Wrote 100 users")
}

func TestRunFixturesAnswer(t *testing.T) {
	var buf bytes.Buffer
	fixturesAnswerCmd.SetOut(&buf)
	fixturesAnswerCmd.SetErr(&buf)

	require.NoError(t, runFixturesAnswer(fixturesAnswerCmd, []string{"show", "me", "revenue"}))

	out := buf.String()
	assert.Contains(t, out, "Topic: revenue")
	assert.Contains(t, out, "SELECT")
}

func TestFixturesGenerateFlagDefaults(t *testing.T) {
	assert.NotNil(t, fixturesGenerateCmd.Flags().Lookup("seed"))
	assert.NotNil(t, fixturesGenerateCmd.Flags().Lookup("out"))
	assert.NotNil(t, fixturesGenerateCmd.Flags().Lookup("preview"))
}
