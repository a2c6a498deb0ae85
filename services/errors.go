package services

import "errors"

// Sentinel errors returned by the services. Controllers map them onto
// HTTP status codes with errors.Is.
var (
	ErrValidation         = errors.New("validation failed")
	ErrUserNotFound       = errors.New("user not found")
	ErrAppealNotFound     = errors.New("appeal not found")
	ErrStatusNotFound     = errors.New("status not found")
	ErrAttachmentsMissing = errors.New("some attachments were not found")
	ErrForbidden          = errors.New("access denied")

	// ErrStatusRegistry marks a missing canonical status. The registry is
	// seeded at startup, so hitting this is a server misconfiguration and
	// surfaces as 500, never as a client-addressable 404.
	ErrStatusRegistry = errors.New("status registry unavailable")
)
