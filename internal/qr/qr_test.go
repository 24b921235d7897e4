package qr

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	g := NewGenerator(dir)

	name, err := g.Generate("9780143127741")
	require.NoError(t, err)

	assert.Equal(t, "qr_code_9780143127741.png", name)
	info, err := os.Stat(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestGenerate_Idempotent(t *testing.T) {
	dir := t.TempDir()
	g := NewGenerator(dir)

	first, err := g.Generate("9780143127741")
	require.NoError(t, err)
	firstBytes, err := os.ReadFile(filepath.Join(dir, first))
	require.NoError(t, err)

	second, err := g.Generate("9780143127741")
	require.NoError(t, err)
	secondBytes, err := os.ReadFile(filepath.Join(dir, second))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, firstBytes, secondBytes)
}

func TestGenerate_CreatesArtifactDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "static", "qr_codes")
	g := NewGenerator(dir)

	_, err := g.Generate("0140447938")
	require.NoError(t, err)

	_, err = os.Stat(dir)
	assert.NoError(t, err)
}

func TestPayload(t *testing.T) {
	assert.Equal(t, "book:9780143127741", Payload("9780143127741"))
}
