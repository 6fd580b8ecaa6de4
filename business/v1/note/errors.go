package note

import "errors"

// ErrEmptyText rejects notes whose text trims to nothing
var ErrEmptyText = errors.New("note text is required")

// ErrNotFound reports a note id with no record under the user's namespace
var ErrNotFound = errors.New("note not found")
