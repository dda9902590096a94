package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ParseFlags parses the global configuration flags from args and returns
// the resulting partial config together with the remaining positional
// arguments. Parsing stops at the first non-flag argument, so subcommand
// flags are left untouched.
//
// Flags:
//
//	-data-dir app-private data directory
//	-blob-name default blob file name
//	-d preferences database DSN
//	-c/-config json file path with configs
//	-kdf-time Argon2id iterations
//	-kdf-memory Argon2id memory in KiB
//	-kdf-threads Argon2id parallelism
//	-strict-passphrase disable '0' padding of short passphrases
//	-max-attempts passphrase attempts for load
//	-request-timeout homeserver request timeout (e.g., "15s")
//	-insecure skip TLS verification for homeserver calls
//	-log-file log file path
func ParseFlags(args []string) (*StructuredConfig, []string, error) {
	var (
		dataDir           string
		blobName          string
		databaseDSN       string
		jsonConfigPath    string
		kdfTime           uint
		kdfMemory         uint
		kdfThreads        uint
		strictPassphrases bool
		maxAttempts       int
		requestTimeout    time.Duration
		insecure          bool
		logFile           string
	)

	fs := flag.NewFlagSet("credcache", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&dataDir, "data-dir", "", "App-private data directory")
	fs.StringVar(&blobName, "blob-name", "", "Default blob file name")
	fs.StringVar(&databaseDSN, "d", "", "Preferences database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.UintVar(&kdfTime, "kdf-time", 0, "Argon2id iterations")
	fs.UintVar(&kdfMemory, "kdf-memory", 0, "Argon2id memory (KiB)")
	fs.UintVar(&kdfThreads, "kdf-threads", 0, "Argon2id threads")
	fs.BoolVar(&strictPassphrases, "strict-passphrase", false, "Do not pad short passphrases")
	fs.IntVar(&maxAttempts, "max-attempts", 0, "Passphrase attempts for load")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.BoolVar(&insecure, "insecure", false, "Skip TLS verification for homeserver calls")
	fs.StringVar(&logFile, "log-file", "", "Log file path")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if kdfThreads > 255 {
		return nil, nil, fmt.Errorf("error parsing flags: kdf-threads must be at most 255, got %d", kdfThreads)
	}

	return &StructuredConfig{
		App: App{
			KDFTime:               uint32(kdfTime),
			KDFMemoryKiB:          uint32(kdfMemory),
			KDFThreads:            uint8(kdfThreads),
			StrictPassphrases:     strictPassphrases,
			MaxPassphraseAttempts: maxAttempts,
		},
		Storage: Storage{
			Files: Files{
				DataDir:  dataDir,
				BlobName: blobName,
			},
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			RequestTimeout:     requestTimeout,
			InsecureSkipVerify: insecure,
		},
		Log:          Log{File: logFile},
		JSONFilePath: jsonConfigPath,
	}, fs.Args(), nil
}
