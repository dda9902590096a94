package store

import "errors"

// Sentinel errors returned by the stores. Callers should use [errors.Is] to
// match against these values.
var (
	// ErrFileNotFound is returned when a blob file is absent or is not a
	// regular file.
	ErrFileNotFound = errors.New("file not found")

	// ErrPreferenceNotFound is returned when no preference is stored under
	// the requested key.
	ErrPreferenceNotFound = errors.New("preference not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement or query
	// against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails or the stored value cannot be decoded.
	ErrScanningRow = errors.New("failed to scan preference row")
)
