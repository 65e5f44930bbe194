package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// UnAuthorizedError is rendered with the http status code 401
	UnAuthorizedError = errors.New("unauthorized")

	// ForbiddenError is rendered with the http status code 403
	ForbiddenError = errors.New("forbidden")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")
)

// DB related errors
var (
	ErrIgnoreRollBackError = errors.New("ignore rollback error")
)

// Document related errors
var (
	ErrDocumentNotFound = errors.Wrap(NotFoundError, "document not found")

	// policy
	ErrDocumentVisibilityPermission = errors.Wrap(UnAuthorizedError,
		"you do not have permission to update the document visibility")
	ErrNoDocumentUpdatePermission = errors.Wrap(UnAuthorizedError,
		"you do not have permission to update the document")
	ErrActionAuthRequiresCfr21 = errors.Wrap(UnAuthorizedError,
		"you do not have permission to set the action auth")

	// mutation
	ErrDocumentTitleLocked = errors.Wrap(BadParameterError,
		"you cannot update the title if the document has been sent")
)
