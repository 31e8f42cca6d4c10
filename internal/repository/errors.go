package repository

import "errors"

// ErrNotFound marks a lookup for a task id that does not exist. Repositories
// wrap it with context; callers match it with errors.Is.
var ErrNotFound = errors.New("not found")
