package validators

import (
	"context"
	"regexp"

	"github.com/MKhiriev/jncep-web/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldURL targets the J-Novel Club novel URL of a download request.
	FieldURL = "url"

	// FieldCredentials targets the optional per-request credentials pair.
	FieldCredentials = "credentials"
)

// jncURLPattern accepts series and reader URLs on j-novel.club. The match is
// anchored at the start only: query strings and extra path segments after the
// slug are allowed, mirroring how the site links its own pages.
var jncURLPattern = regexp.MustCompile(`(?i)^https://j-novel\.club/(read|series)/[a-z0-9-]+`)

// EpubRequestValidator implements the Validator interface for the
// models.EpubRequest download request.
//
// It supports both value and pointer receivers and allows optional
// field-level scoping via variadic field name arguments.
type EpubRequestValidator struct {
}

// NewEpubRequestValidator constructs a new EpubRequestValidator
// and returns it as the Validator interface.
func NewEpubRequestValidator() Validator {
	return &EpubRequestValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.EpubRequest / *models.EpubRequest
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// a sensible default set of fields is validated.
func (v *EpubRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.EpubRequest:
		return v.validateEpubRequest(ctx, value, fields...)
	case *models.EpubRequest:
		return v.validateEpubRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateEpubRequest validates a single EpubRequest.
//
// Default validated fields (when none specified): URL, Credentials.
//
// FieldURL distinguishes a missing URL from a malformed one so callers can
// answer the two cases differently. FieldCredentials enforces that email and
// password are either both present or both absent; resolving which
// credentials source to use is the caller's job.
//
// Returns the first encountered validation error or nil.
func (v *EpubRequestValidator) validateEpubRequest(ctx context.Context, request models.EpubRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldURL, FieldCredentials}
	}

	for _, f := range fields {
		switch f {
		case FieldURL:
			if request.URL == "" {
				return ErrMissingURL
			}
			if !jncURLPattern.MatchString(request.URL) {
				return ErrInvalidURL
			}
		case FieldCredentials:
			if (request.Email == "") != (request.Password == "") {
				return ErrPartialCredentials
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
