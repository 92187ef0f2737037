// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// CredentialsSource describes where a resolved credentials pair came from.
// It is logged alongside the masked email so operators can tell whether a
// request used its own credentials or fell back to the server environment.
type CredentialsSource string

const (
	// CredentialsFromRequest marks a pair supplied in the request itself
	// (query parameters or form fields).
	CredentialsFromRequest CredentialsSource = "request args"

	// CredentialsFromEnvironment marks a pair taken from the server's
	// JNCEP_EMAIL / JNCEP_PASSWORD environment configuration.
	CredentialsFromEnvironment CredentialsSource = "environment"
)

// Credentials is the immutable J-Novel Club email/password pair handed to the
// EPUB generator. Instances live only for the duration of one request.
type Credentials struct {
	// Email is the J-Novel Club account email.
	Email string

	// Password is the account password. It is passed to the generator via
	// its child environment and must never be logged or serialized.
	Password string

	// Source records which layer supplied the pair.
	Source CredentialsSource
}

// IsZero reports whether neither field of the pair is set.
func (c Credentials) IsZero() bool {
	return c.Email == "" && c.Password == ""
}

// IsPartial reports whether exactly one of the two fields is set.
// A partial pair is a client error, not a fallback condition.
func (c Credentials) IsPartial() bool {
	return (c.Email == "") != (c.Password == "")
}

// MaskedEmail returns the email reduced to its first three characters plus
// the domain, e.g. "som...example.com". Safe for log output.
func (c Credentials) MaskedEmail() string {
	if c.Email == "" {
		return ""
	}

	prefix := c.Email
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}

	domain := c.Email
	if at := strings.LastIndex(c.Email, "@"); at >= 0 {
		domain = c.Email[at+1:]
	}

	return prefix + "..." + domain
}
