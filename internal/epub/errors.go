package epub

import "github.com/ayoisaiah/bookmark/internal/apperr"

var (
	ErrManifestNotFound = &apperr.Error{
		Message: "container file not found",
	}

	ErrRootfileNotFound = &apperr.Error{
		Message: "no rootfile with a full-path attribute in container file",
	}

	ErrManifestUnreadable = &apperr.Error{
		Message: "package manifest %s is unreadable",
	}

	errNoRootElement = &apperr.Error{
		Message: "document has no root element",
	}
)
