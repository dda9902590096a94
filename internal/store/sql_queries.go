// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const preferencesTable = "preferences"

// psql builds SQLite statements with "?" placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildUpsertPreferenceQuery(key, kind, value string, now time.Time) (string, []any, error) {
	return psql.
		Insert(preferencesTable).
		Columns("name", "kind", "value", "updated_at").
		Values(key, kind, value, now.UTC()).
		Suffix("ON CONFLICT(name) DO UPDATE SET kind = excluded.kind, value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildSelectPreferenceQuery(key string) (string, []any, error) {
	return psql.
		Select("kind", "value").
		From(preferencesTable).
		Where(sq.Eq{"name": key}).
		ToSql()
}

func buildDeletePreferenceQuery(key string) (string, []any, error) {
	return psql.
		Delete(preferencesTable).
		Where(sq.Eq{"name": key}).
		ToSql()
}
