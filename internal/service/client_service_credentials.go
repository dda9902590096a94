package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/credcache/internal/config"
	"github.com/MKhiriev/credcache/internal/crypto"
	"github.com/MKhiriev/credcache/internal/logger"
	"github.com/MKhiriev/credcache/internal/passphrase"
	"github.com/MKhiriev/credcache/internal/store"
	"github.com/MKhiriev/credcache/internal/validators"
	"github.com/MKhiriev/credcache/models"
)

// matrixIDPattern matches "@localpart:server" anywhere in the input.
var matrixIDPattern = regexp.MustCompile(`@(\w+):([^\s:]+)`)

type clientCredentialService struct {
	blobs     store.BlobStore
	cipher    crypto.CredentialCipher
	validator validators.Validator

	strict bool
	logger *logger.Logger
}

func NewClientCredentialService(blobs store.BlobStore, cipher crypto.CredentialCipher, appCfg config.App, logger *logger.Logger) CredentialService {
	return &clientCredentialService{
		blobs:     blobs,
		cipher:    cipher,
		validator: validators.NewCredentialValidator(),
		strict:    appCfg.StrictPassphrases,
		logger:    logger,
	}
}

func (c *clientCredentialService) BlobPath(path string) string {
	return c.blobs.Path(path)
}

func (c *clientCredentialService) PassphraseLimit() int {
	if c.strict {
		return 0
	}
	return passphrase.TargetLength
}

func (c *clientCredentialService) Save(ctx context.Context, path string, record models.CredentialRecord, pass string) error {
	log := logger.FromContext(ctx)
	blobPath := c.blobs.Path(path)

	record = models.CredentialRecord{
		ServerURL: strings.TrimSpace(record.ServerURL),
		Account:   strings.TrimSpace(record.Account),
	}
	if err := c.validator.Validate(ctx, record); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	key, err := c.preparePassphrase(ctx, pass, true)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode credential record: %w", err)
	}

	blob, err := c.cipher.Encrypt(string(payload), key)
	if err != nil {
		log.Err(err).Str("func", "clientCredentialService.Save").Msg("failed to encrypt credential record")
		return fmt.Errorf("encrypt credential record: %w", err)
	}

	if err = c.blobs.WriteAll(path, blob); err != nil {
		log.Err(err).Str("func", "clientCredentialService.Save").Str("path", blobPath).Msg("failed to write blob")
		return fmt.Errorf("write blob: %w", err)
	}

	log.Info().Str("path", blobPath).Msg("credentials saved")
	return nil
}

func (c *clientCredentialService) Load(ctx context.Context, path, pass string) (models.CredentialRecord, error) {
	log := logger.FromContext(ctx)
	blobPath := c.blobs.Path(path)

	content, err := c.blobs.ReadAll(path)
	if errors.Is(err, store.ErrFileNotFound) {
		log.Info().Str("path", blobPath).Msg("no blob file")
		return models.CredentialRecord{}, fmt.Errorf("%w: %w", ErrNoCachedData, err)
	}
	if err != nil {
		log.Err(err).Str("func", "clientCredentialService.Load").Str("path", blobPath).Msg("failed to read blob")
		return models.CredentialRecord{}, fmt.Errorf("read blob: %w", err)
	}

	blob := strings.TrimSpace(content)
	if len(blob) < crypto.MinBlobLength {
		log.Info().Str("path", blobPath).Int("length", len(blob)).Msg("blob file too short")
		return models.CredentialRecord{}, fmt.Errorf("%w: %s holds no blob", ErrNoCachedData, blobPath)
	}

	key, err := c.preparePassphrase(ctx, pass, false)
	if err != nil {
		return models.CredentialRecord{}, err
	}

	plaintext, err := c.cipher.Decrypt(blob, key)
	if err != nil {
		log.Warn().Str("path", blobPath).Msg("blob could not be decrypted")
		return models.CredentialRecord{}, fmt.Errorf("%w: %w", ErrWrongPassphrase, err)
	}

	record, err := c.parseRecord(ctx, plaintext)
	if err != nil {
		log.Warn().Str("path", blobPath).Msg("decrypted blob is not a credential record")
		return models.CredentialRecord{}, err
	}

	log.Info().Str("path", blobPath).Msg("credentials loaded")
	return record, nil
}

// preparePassphrase applies the padding policy. In strict mode a new blob
// needs a full-length passphrase and nothing is padded. With padding on, a
// new blob takes at most TargetLength characters, the most the unlock prompt
// accepts.
func (c *clientCredentialService) preparePassphrase(ctx context.Context, pass string, forSave bool) (string, error) {
	trimmed := strings.TrimSpace(pass)
	if trimmed == "" {
		return "", ErrEmptyPassphrase
	}

	if c.strict {
		if forSave && utf8.RuneCountInString(trimmed) < passphrase.TargetLength {
			return "", fmt.Errorf("%w: need at least %d characters", ErrPassphraseTooShort, passphrase.TargetLength)
		}
		return trimmed, nil
	}

	if forSave && utf8.RuneCountInString(trimmed) > passphrase.TargetLength {
		return "", fmt.Errorf("%w: at most %d characters unless strict passphrases are on", ErrPassphraseTooLong, passphrase.TargetLength)
	}

	if passphrase.NeedsPadding(trimmed) {
		logger.FromContext(ctx).Warn().
			Int("length", utf8.RuneCountInString(trimmed)).
			Msg("short passphrase padded to 16 characters; padding adds no strength")
	}

	return passphrase.Normalize(trimmed), nil
}

// parseRecord reads the JSON record. An account holding a full Matrix ID is
// split into its localpart, and its server part fills in a missing or
// unusable server URL. Plaintext that is not JSON is accepted when it
// contains a Matrix ID.
func (c *clientCredentialService) parseRecord(ctx context.Context, plaintext string) (models.CredentialRecord, error) {
	var record models.CredentialRecord
	if err := json.Unmarshal([]byte(plaintext), &record); err != nil {
		if fromID, ok := recordFromMatrixID(plaintext); ok {
			return fromID, nil
		}
		return models.CredentialRecord{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	if fromID, ok := recordFromMatrixID(record.Account); ok {
		record.Account = fromID.Account
		if c.validator.Validate(ctx, record, validators.FieldServerURL) != nil {
			record.ServerURL = fromID.ServerURL
		}
	}

	if err := c.validator.Validate(ctx, record); err != nil {
		return models.CredentialRecord{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	return record, nil
}

func recordFromMatrixID(s string) (models.CredentialRecord, bool) {
	m := matrixIDPattern.FindStringSubmatch(s)
	if m == nil {
		return models.CredentialRecord{}, false
	}

	return models.CredentialRecord{
		ServerURL: "https://" + m[2] + "/",
		Account:   m[1],
	}, true
}
