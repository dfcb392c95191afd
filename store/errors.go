package store

import "github.com/ayoisaiah/bookmark/internal/apperr"

var (
	errBookMarkRunning = &apperr.Error{
		Message: "is BookMark already running? Only one instance can be active at a time",
	}

	ErrBookNotFound = &apperr.Error{
		Message: "book %q not found: open it with the read command first",
	}

	ErrHighlightNotFound = &apperr.Error{
		Message: "no highlight with id %q",
	}

	ErrAmbiguousHighlight = &apperr.Error{
		Message: "more than one highlight id starts with %q",
	}
)
