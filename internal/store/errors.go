package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrCredentialAlreadyExists is returned when an attempt to set the
	// journal password fails because a credential row already exists for
	// the owner. Once set, the journal password is never overwritten.
	ErrCredentialAlreadyExists = errors.New("journal credential already exists")

	// ErrCredentialNotFound is returned when a verification or status query
	// targets an owner that has not yet set a journal password.
	ErrCredentialNotFound = errors.New("journal credential was not found")

	// ErrEntryNotFound is returned when a query or update targets a journal
	// entry (identified by id and owner_id) that does not exist in the
	// database.
	ErrEntryNotFound = errors.New("journal entry was not found")

	// ErrVersionNotFound is returned when a lookup or restore targets a
	// version number that was never recorded for the given entry.
	ErrVersionNotFound = errors.New("journal entry version was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
