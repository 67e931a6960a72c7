package file

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *ConfigStore {
	t.Helper()
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestNewConfigStore_Path(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, ConfigFile), store.Path())
}

func TestNewConfigStore_DefaultDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewConfigStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".asb", ConfigFile), store.Path())
}

func TestNewConfigStore_Errors(t *testing.T) {
	t.Run("directory cannot be created", func(t *testing.T) {
		store, err := NewConfigStore("/dev/null/asb")

		assert.Error(t, err)
		assert.Nil(t, store)
	})

	t.Run("corrupted file", func(t *testing.T) {
		tmpDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ConfigFile), []byte("[airtable\nbase_id ="), 0600))

		store, err := NewConfigStore(tmpDir)

		assert.Error(t, err)
		assert.Nil(t, store)
	})
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Set("airtable.base_id", "appBase0000000001"))
	require.NoError(t, store.Set("airtable.max_retries", int64(4)))
	require.NoError(t, store.Set("airtable.requests_per_second", 2.5))

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"string", store.GetString("airtable.base_id"), "appBase0000000001"},
		{"string of wrong type", store.GetString("airtable.max_retries"), ""},
		{"missing string", store.GetString("airtable.api_key"), ""},
		{"int64", store.GetInt("airtable.max_retries"), 4},
		{"int of wrong type", store.GetInt("airtable.base_id"), 0},
		{"missing int", store.GetInt("airtable.timeout"), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}

	val, ok := store.Get("airtable.requests_per_second")
	assert.True(t, ok)
	assert.Equal(t, 2.5, val)

	_, ok = store.Get("cache.lookup_ttl")
	assert.False(t, ok)
}

func TestConfigStore_PersistsAcrossInstances(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store.Set("whatsapp.phone", "+27674842001"))
	require.NoError(t, store.Set("airtable.max_retries", 5))
	require.NoError(t, store.Set("whatsapp.phone", "+27110000000"))

	reopened, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "+27110000000", reopened.GetString("whatsapp.phone"))
	assert.Equal(t, 5, reopened.GetInt("airtable.max_retries"))
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Set("airtable.api_key", "pat.secret"))

	info, err := os.Stat(store.Path())

	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_Load(t *testing.T) {
	t.Run("missing file leaves store empty", func(t *testing.T) {
		store := newStore(t)

		require.NoError(t, store.Load())
		_, ok := store.Get("airtable.base_id")
		assert.False(t, ok)
	})

	t.Run("empty file", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, os.WriteFile(store.Path(), nil, 0600))

		assert.NoError(t, store.Load())
	})

	t.Run("invalid file", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.Set("airtable.base_id", "appBase0000000001"))
		require.NoError(t, os.WriteFile(store.Path(), []byte("not toml ][}{"), 0600))

		assert.Error(t, store.Load())
	})

	t.Run("picks up external edits", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, os.WriteFile(store.Path(), []byte("[tables]\nvideos = \"Interviews\"\n"), 0600))

		require.NoError(t, store.Load())
		assert.Equal(t, "Interviews", store.GetString("tables.videos"))
	})
}

func TestConfigStore_SaveErrors(t *testing.T) {
	t.Run("path is a directory", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, os.Mkdir(store.Path(), 0700))

		assert.Error(t, store.Save())
	})

	t.Run("value cannot be encoded", func(t *testing.T) {
		store := newStore(t)

		assert.Error(t, store.Set("tables.videos", make(chan int)))
	})
}

func TestConfigStore_Concurrency(t *testing.T) {
	store := newStore(t)
	store.BindEnvs(SiteEnv)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = store.Set("server.listen_addr", ":8080")
		}()
		go func() {
			defer wg.Done()
			_ = store.GetString("server.listen_addr")
		}()
	}
	wg.Wait()

	assert.Equal(t, ":8080", store.GetString("server.listen_addr"))
}

func TestNewConfigStoreAt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "site.toml")

	store, err := NewConfigStoreAt(path)

	require.NoError(t, err)
	assert.Equal(t, path, store.Path())
	require.NoError(t, store.Set("server.listen_addr", ":9090"))
	assert.FileExists(t, path)
}

func TestConfigStore_NestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	content := []byte(`
[airtable]
base_id = "appBase0000000001"
max_retries = 2

[tables]
videos = "tblVideos00000001"
`)
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), content, 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "appBase0000000001", store.GetString("airtable.base_id"))
	assert.Equal(t, 2, store.GetInt("airtable.max_retries"))
	assert.Equal(t, "tblVideos00000001", store.GetString("tables.videos"))

	// Saving keeps the section layout.
	require.NoError(t, store.Set("airtable.timeout", "10s"))
	saved, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(saved), "[airtable]")
	assert.NotContains(t, string(saved), `"airtable.timeout"`)
}

func TestConfigStore_BindEnv(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("airtable.base_id", "appFromFile000001"))
	store.BindEnvs(SiteEnv)

	t.Setenv("VITE_AT_BASE", "appFromViteBase01")
	assert.Equal(t, "appFromViteBase01", store.GetString("airtable.base_id"))

	t.Setenv("AIRTABLE_BASE_ID", "appFromEnv0000001")
	assert.Equal(t, "appFromEnv0000001", store.GetString("airtable.base_id"))

	t.Setenv("AIRTABLE_BASE_ID", "  ")
	assert.Equal(t, "appFromViteBase01", store.GetString("airtable.base_id"))
}

func TestConfigStore_BindEnv_NotPersisted(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	store.BindEnvs(SiteEnv)
	t.Setenv("AIRTABLE_API_KEY", "pat.secret")

	require.NoError(t, store.Set("whatsapp.phone", "+27000000000"))

	saved, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.NotContains(t, string(saved), "pat.secret")
	assert.Equal(t, "pat.secret", store.GetString("airtable.api_key"))
}

func TestSiteEnv_Aliases(t *testing.T) {
	assert.Equal(t,
		[]string{"AIRTABLE_BASE_ID", "VITE_AT_BASE_ID", "VITE_AIRTABLE_BASE_ID", "VITE_AT_BASE"},
		SiteEnv["airtable.base_id"])
	assert.Contains(t, SiteEnv["whatsapp.phone"], "WA_PHONE")
	assert.Contains(t, SiteEnv["server.listen_addr"], "LISTEN_ADDR")
}

func TestNestMap(t *testing.T) {
	nested := nestMap(map[string]any{
		"airtable.base_id": "app",
		"top":              1,
	})

	assert.Equal(t, map[string]any{
		"airtable": map[string]any{"base_id": "app"},
		"top":      1,
	}, nested)
}
