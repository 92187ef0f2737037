package service

import "errors"

// Download error sentinels. The texts are written verbatim into HTTP response
// bodies, so changing them changes the public API.
var (
	// ErrMissingURLParameter reports a request without a jnovelclub_url
	// parameter at all.
	ErrMissingURLParameter = errors.New("jnovelclub_url is missing from the request")

	// ErrInvalidNovelURL reports a URL that does not match the accepted
	// J-Novel Club series/part shape. The offending URL is appended at the
	// error site.
	ErrInvalidNovelURL = errors.New("Invalid J-Novel Club URL")

	// ErrPartialCredentials reports an email without a password or the
	// reverse. The source ("request args" or "environment") is appended at
	// the error site.
	ErrPartialCredentials = errors.New("Partial credentials provided in")

	// ErrNoCredentials reports that neither the request nor the server
	// environment yields a complete credentials pair.
	ErrNoCredentials = errors.New("No credentials found in request or environment")

	// ErrInvalidCredentials reports that the generator could not sign in
	// with the resolved pair.
	ErrInvalidCredentials = errors.New("Invalid J-Novel Club credentials")

	// ErrNoPermission reports that the account cannot access the content
	// even after the one-shot purchase attempt.
	ErrNoPermission = errors.New("You do not have permission to download this book.")

	// ErrNoEpubsFound reports a generator run that completed without
	// producing any EPUB file.
	ErrNoEpubsFound = errors.New("No EPUB files found in the directory, is the URL correct.")
)

// ErrVersionIsNotSpecified reports an app-info service constructed without a
// build version.
var ErrVersionIsNotSpecified = errors.New("app version is not specified")
