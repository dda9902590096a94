package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		KDFTime               uint32 `json:"kdf_time"`
		KDFMemoryKiB          uint32 `json:"kdf_memory_kib"`
		KDFThreads            uint8  `json:"kdf_threads"`
		StrictPassphrases     bool   `json:"strict_passphrases"`
		MaxPassphraseAttempts int    `json:"max_passphrase_attempts"`
	} `json:"app,omitempty"`

	Storage struct {
		Files struct {
			DataDir  string `json:"data_dir"`
			BlobName string `json:"blob_name"`
		} `json:"files,omitempty"`

		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Adapter struct {
		RequestTimeout     Duration `json:"request_timeout"`
		InsecureSkipVerify bool     `json:"insecure_skip_verify"`
	} `json:"adapter,omitempty"`

	Log struct {
		File string `json:"file"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			KDFTime:               jsonCfg.App.KDFTime,
			KDFMemoryKiB:          jsonCfg.App.KDFMemoryKiB,
			KDFThreads:            jsonCfg.App.KDFThreads,
			StrictPassphrases:     jsonCfg.App.StrictPassphrases,
			MaxPassphraseAttempts: jsonCfg.App.MaxPassphraseAttempts,
		},
		Storage: Storage{
			Files: Files{
				DataDir:  jsonCfg.Storage.Files.DataDir,
				BlobName: jsonCfg.Storage.Files.BlobName,
			},
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Adapter: Adapter{
			RequestTimeout:     time.Duration(jsonCfg.Adapter.RequestTimeout),
			InsecureSkipVerify: jsonCfg.Adapter.InsecureSkipVerify,
		},
		Log: Log{File: jsonCfg.Log.File},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
