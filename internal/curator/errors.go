package curator

import "errors"

var (
	// ErrEmptyDescription rejects a blank curation request before any
	// collaborator is called.
	ErrEmptyDescription = errors.New("description is empty")

	// ErrGenerator wraps a failed generation call.
	ErrGenerator = errors.New("generation request failed")

	// ErrCatalog wraps a failed catalog search call. A query that merely
	// resolves to nothing is not an error.
	ErrCatalog = errors.New("catalog search failed")
)
