package library

import "github.com/ayoisaiah/bookmark/internal/apperr"

var (
	ErrBookNotFound = &apperr.Error{
		Message: "no book named %q in the library or at that path",
	}

	ErrBookExists = &apperr.Error{
		Message: "a book already exists at %s",
	}

	errNotInLibrary = &apperr.Error{
		Message: "%s is not inside the library directory",
	}
)
