package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("llm.provider", "ollama"))

	val, ok := store.Get("llm.provider")
	assert.True(t, ok)
	assert.Equal(t, "ollama", val)
}

func TestConfigStore_GetString(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("embedding.model", "nomic-embed-text"))
	assert.Equal(t, "nomic-embed-text", store.GetString("embedding.model"))

	// Non-existent key
	assert.Equal(t, "", store.GetString("nonexistent"))

	// Wrong type
	require.NoError(t, store.Set("retrieval.top_k", 5))
	assert.Equal(t, "", store.GetString("retrieval.top_k"))
}

func TestConfigStore_GetInt(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("retrieval.top_k", 7))
	assert.Equal(t, 7, store.GetInt("retrieval.top_k"))

	assert.Equal(t, 0, store.GetInt("nonexistent"))

	require.NoError(t, store.Set("llm.provider", "openai"))
	assert.Equal(t, 0, store.GetInt("llm.provider"))
}

func TestConfigStore_GetBool(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("output.linkedin", true))
	assert.True(t, store.GetBool("output.linkedin"))

	assert.False(t, store.GetBool("nonexistent"))
}

func TestConfigStore_GetStringSlice(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("audience.tone", []string{"punchy", "cite sources"}))
	assert.Equal(t, []string{"punchy", "cite sources"}, store.GetStringSlice("audience.tone"))

	assert.Nil(t, store.GetStringSlice("nonexistent"))
}

func TestConfigStore_PersistsAcrossLoads(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("llm.provider", "ollama"))
	require.NoError(t, store.Set("retrieval.top_k", 3))

	reopened, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "ollama", reopened.GetString("llm.provider"))
	assert.Equal(t, 3, reopened.GetInt("retrieval.top_k"))
}

func TestConfigStore_FlattensNestedTOML(t *testing.T) {
	tmpDir := t.TempDir()
	content := "[llm]\nprovider = \"openai\"\nmodel = \"gpt-4o-mini\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "openai", store.GetString("llm.provider"))
	assert.Equal(t, "gpt-4o-mini", store.GetString("llm.model"))
}

func TestConfigStore_WritesNestedTables(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("llm.provider", "openai"))
	require.NoError(t, store.Set("llm.model", "gpt-4o-mini"))

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "[llm]")
	assert.NotContains(t, string(raw), "'llm.provider'")
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("llm.api_key", "secret"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
