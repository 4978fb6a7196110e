package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// UnavailableError is rendered with the http status code 503
	UnavailableError = errors.New("service unavailable")
)

// Reference data related errors
var ErrCandidateListNotLoaded = errors.Wrap(UnavailableError, "candidate list not loaded")

// Audit trail related errors
var ErrAuditTrailNotConfigured = errors.Wrap(UnavailableError, "audit trail not configured")
