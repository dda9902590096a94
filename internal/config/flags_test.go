package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCfg  *StructuredConfig
		wantRest []string
	}{
		{
			name:     "no flags",
			args:     nil,
			wantCfg:  &StructuredConfig{},
			wantRest: nil,
		},
		{
			name: "all flags",
			args: []string{
				"-data-dir", "/tmp/cc",
				"-blob-name", "blob.txt",
				"-d", "/tmp/cc/p.db",
				"-config", "/etc/cc.json",
				"-kdf-time", "3",
				"-kdf-memory", "2048",
				"-kdf-threads", "2",
				"-strict-passphrase",
				"-max-attempts", "5",
				"-request-timeout", "30s",
				"-insecure",
				"-log-file", "/tmp/cc.log",
			},
			wantCfg: &StructuredConfig{
				App: App{
					KDFTime:               3,
					KDFMemoryKiB:          2048,
					KDFThreads:            2,
					StrictPassphrases:     true,
					MaxPassphraseAttempts: 5,
				},
				Storage: Storage{
					Files: Files{DataDir: "/tmp/cc", BlobName: "blob.txt"},
					DB:    DB{DSN: "/tmp/cc/p.db"},
				},
				Adapter:      Adapter{RequestTimeout: 30 * time.Second, InsecureSkipVerify: true},
				Log:          Log{File: "/tmp/cc.log"},
				JSONFilePath: "/etc/cc.json",
			},
			wantRest: []string{},
		},
		{
			name:     "stops at subcommand",
			args:     []string{"-c", "cfg.json", "pref", "set", "theme", "dark"},
			wantCfg:  &StructuredConfig{JSONFilePath: "cfg.json"},
			wantRest: []string{"pref", "set", "theme", "dark"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, rest, err := ParseFlags(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCfg, cfg)
			assert.Equal(t, tt.wantRest, rest)
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"-unknown"}},
		{name: "bad duration", args: []string{"-request-timeout", "soon"}},
		{name: "threads overflow", args: []string{"-kdf-threads", "300"}},
		{name: "negative uint", args: []string{"-kdf-time", "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, rest, err := ParseFlags(tt.args)
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Nil(t, rest)
		})
	}
}
