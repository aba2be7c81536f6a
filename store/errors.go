package store

import (
	"errors"
	"sort"
	"strings"
)

// ErrNotFound is returned when a task does not exist or belongs to another
// user. The two cases are deliberately indistinguishable to the caller.
var ErrNotFound = errors.New("task not found")

// ValidationError reports rejected input, one reason per field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "invalid task fields: " + strings.Join(names, ", ")
}
