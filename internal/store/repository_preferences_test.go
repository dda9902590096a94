package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/credcache/internal/logger"
	"github.com/MKhiriev/credcache/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

func newTestPreferencesRepo(t *testing.T) (*preferencesRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l := logger.Nop()
	repo := &preferencesRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
		now:    func() time.Time { return fixedNow },
	}
	return repo, mock
}

// ── Put ─────────────────────────────────────────────────────────────────────

func TestPreferencesPut_Success(t *testing.T) {
	tests := []struct {
		name  string
		value models.PreferenceValue
		kind  string
		raw   string
	}{
		{name: "string", value: models.StringPreference("https://m.org/"), kind: "string", raw: "https://m.org/"},
		{name: "int", value: models.IntPreference(-7), kind: "int", raw: "-7"},
		{name: "bool", value: models.BoolPreference(true), kind: "bool", raw: "true"},
		{name: "float", value: models.FloatPreference(1.5), kind: "float", raw: "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestPreferencesRepo(t)

			mock.ExpectExec(regexp.QuoteMeta("INSERT INTO preferences")).
				WithArgs("key", tt.kind, tt.raw, fixedNow).
				WillReturnResult(sqlmock.NewResult(1, 1))

			require.NoError(t, repo.Put(context.Background(), "key", tt.value))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPreferencesPut_UnknownKind(t *testing.T) {
	repo, mock := newTestPreferencesRepo(t)

	err := repo.Put(context.Background(), "key", models.PreferenceValue{})
	assert.ErrorIs(t, err, ErrBuildingSQLQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferencesPut_ExecError(t *testing.T) {
	repo, mock := newTestPreferencesRepo(t)

	mock.ExpectExec("INSERT INTO preferences").
		WillReturnError(errors.New("disk I/O error"))

	err := repo.Put(context.Background(), "key", models.BoolPreference(false))
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── Get ─────────────────────────────────────────────────────────────────────

func TestPreferencesGet_Success(t *testing.T) {
	repo, mock := newTestPreferencesRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT kind, value FROM preferences WHERE name = ?")).
		WithArgs("attempts").
		WillReturnRows(sqlmock.NewRows([]string{"kind", "value"}).AddRow("int", "3"))

	got, err := repo.Get(context.Background(), "attempts")
	require.NoError(t, err)
	assert.Equal(t, models.IntPreference(3), got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferencesGet_NotFound(t *testing.T) {
	repo, mock := newTestPreferencesRepo(t)

	mock.ExpectQuery("SELECT kind, value FROM preferences").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrPreferenceNotFound)
}

func TestPreferencesGet_QueryError(t *testing.T) {
	repo, mock := newTestPreferencesRepo(t)

	mock.ExpectQuery("SELECT kind, value FROM preferences").
		WillReturnError(errors.New("database is locked"))

	_, err := repo.Get(context.Background(), "k")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestPreferencesGet_CorruptRow(t *testing.T) {
	tests := []struct {
		name string
		kind string
		raw  string
	}{
		{name: "unknown kind", kind: "blob", raw: "x"},
		{name: "bad int", kind: "int", raw: "three"},
		{name: "bad bool", kind: "bool", raw: "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestPreferencesRepo(t)

			mock.ExpectQuery("SELECT kind, value FROM preferences").
				WillReturnRows(sqlmock.NewRows([]string{"kind", "value"}).AddRow(tt.kind, tt.raw))

			_, err := repo.Get(context.Background(), "k")
			assert.ErrorIs(t, err, ErrScanningRow)
		})
	}
}

// ── Delete ──────────────────────────────────────────────────────────────────

func TestPreferencesDelete(t *testing.T) {
	repo, mock := newTestPreferencesRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM preferences WHERE name = ?")).
		WithArgs("k").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), "k"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferencesDelete_ExecError(t *testing.T) {
	repo, mock := newTestPreferencesRepo(t)

	mock.ExpectExec("DELETE FROM preferences").
		WillReturnError(errors.New("readonly database"))

	assert.ErrorIs(t, repo.Delete(context.Background(), "k"), ErrExecutingQuery)
}
