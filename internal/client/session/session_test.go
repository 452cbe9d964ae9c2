package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileYieldsEmptySession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "", s.Token())
	assert.Equal(t, "", s.LocaleOverride())
}

func TestSetToken_PersistsAcrossLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, s.SetToken("secret-token"))

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "secret-token", reloaded.Token())
}

func TestSetLocaleOverride_PersistsAcrossLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, s.SetLocaleOverride("en"))
	require.NoError(t, s.SetToken("tok"))

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "en", reloaded.LocaleOverride())
	assert.Equal(t, "tok", reloaded.Token(), "both keys survive")
}

func TestLoad_CorruptFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
