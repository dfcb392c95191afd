package config

import "github.com/ayoisaiah/bookmark/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidSort = &apperr.Error{
		Message: "unknown library sort order %q (expected one of %v)",
	}

	errEmptyLibraryDir = &apperr.Error{
		Message: "library directory cannot be empty",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "unknown log level %q",
	}

	errInvalidSince = &apperr.Error{
		Message: "invalid since time",
	}

	errInvalidUntil = &apperr.Error{
		Message: "invalid until time",
	}

	errInvalidRange = &apperr.Error{
		Message: "end time (%s) must be after start time (%s)",
	}
)
