package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// stubConfigDir points the default data dir at a temp directory.
func stubConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	orig := userConfigDir
	userConfigDir = func() (string, error) { return dir, nil }
	t.Cleanup(func() { userConfigDir = orig })
	return dir
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
	assert.Empty(t, b.rest)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilderAppliesDefaults(t *testing.T) {
	dir := stubConfigDir(t)

	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)

	dataDir := filepath.Join(dir, "credcache")
	assert.Equal(t, dataDir, cfg.Storage.Files.DataDir)
	assert.Equal(t, "serverAccountFile.txt", cfg.Storage.Files.BlobName)
	assert.Equal(t, filepath.Join(dataDir, "preferences.db"), cfg.Storage.DB.DSN)
	assert.Equal(t, filepath.Join(dataDir, "logs", "credcache.log"), cfg.Log.File)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.False(t, cfg.Adapter.InsecureSkipVerify)
	assert.Equal(t, 3, cfg.App.MaxPassphraseAttempts)
	assert.Equal(t, uint32(1), cfg.App.KDFTime)
	assert.Equal(t, uint32(64*1024), cfg.App.KDFMemoryKiB)
	assert.Equal(t, uint8(4), cfg.App.KDFThreads)
	assert.False(t, cfg.App.StrictPassphrases)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_FirstSourceWins(t *testing.T) {
	stubConfigDir(t)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{Files: Files{BlobName: "first.txt"}}},
		&StructuredConfig{
			Storage: Storage{Files: Files{BlobName: "second.txt"}},
			App:     App{MaxPassphraseAttempts: 7},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "first.txt", cfg.Storage.Files.BlobName)
	assert.Equal(t, 7, cfg.App.MaxPassphraseAttempts)
}

func TestBuild_DefaultDirError(t *testing.T) {
	orig := userConfigDir
	userConfigDir = func() (string, error) { return "", errors.New("no home") }
	t.Cleanup(func() { userConfigDir = orig })

	cfg, err := newConfigBuilder().build()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "no home")
}

func TestBuild_ValidationError(t *testing.T) {
	stubConfigDir(t)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{Files: Files{BlobName: "nested/blob.txt"}},
	})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("STORAGE_FILES_BLOB_NAME", "env.txt")
	t.Setenv("APP_MAX_PASSPHRASE_ATTEMPTS", "5")
	t.Setenv("ADAPTER_INSECURE_SKIP_VERIFY", "true")

	b := newConfigBuilder()
	b.withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env.txt", b.configs[0].Storage.Files.BlobName)
	assert.Equal(t, 5, b.configs[0].App.MaxPassphraseAttempts)
	assert.True(t, b.configs[0].Adapter.InsecureSkipVerify)
}

func TestWithEnv_InvalidValueSetsError(t *testing.T) {
	t.Setenv("APP_KDF_THREADS", "many")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_KeepsRemainingArgs(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags([]string{"-blob-name", "flag.txt", "load", "-copy"}))

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "flag.txt", b.configs[0].Storage.Files.BlobName)
	assert.Equal(t, []string{"load", "-copy"}, b.rest)
}

func TestWithFlags_UnknownFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-nope"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	assert.Same(t, b, b.withJSON())

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"storage": map[string]any{"files": map[string]any{"blob_name": "json.txt"}},
		"adapter": map[string]any{"request_timeout": "42s"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json.txt", b.configs[1].Storage.Files.BlobName)
	assert.Equal(t, 42*time.Second, b.configs[1].Adapter.RequestTimeout)
}

func TestWithJSON_SetsError_WhenFileMissing(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: filepath.Join(t.TempDir(), "missing.json"),
	})
	b.withJSON()

	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_EnvBeatsFlagsBeatsJSON(t *testing.T) {
	stubConfigDir(t)

	path := writeTempJSONConfig(t, map[string]any{
		"storage": map[string]any{"files": map[string]any{"blob_name": "json.txt"}},
		"app":     map[string]any{"max_passphrase_attempts": 9, "kdf_time": 2},
		"adapter": map[string]any{"request_timeout": "1m"},
	})
	t.Setenv("STORAGE_FILES_BLOB_NAME", "env.txt")

	cfg, rest, err := GetStructuredConfig([]string{
		"-c", path,
		"-blob-name", "flag.txt",
		"-max-attempts", "4",
		"save", "-server", "https://matrix.example.org",
	})
	require.NoError(t, err)

	assert.Equal(t, "env.txt", cfg.Storage.Files.BlobName)
	assert.Equal(t, 4, cfg.App.MaxPassphraseAttempts)
	assert.Equal(t, uint32(2), cfg.App.KDFTime)
	assert.Equal(t, time.Minute, cfg.Adapter.RequestTimeout)
	assert.Equal(t, []string{"save", "-server", "https://matrix.example.org"}, rest)
}

func TestGetStructuredConfig_PassphraseFromEnv(t *testing.T) {
	stubConfigDir(t)
	t.Setenv("CREDCACHE_PASSPHRASE", "hunter2")

	cfg, _, err := GetStructuredConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", cfg.Passphrase)
}
