package models

// EpubRequest carries everything one download request needs: the target URL,
// the optional part specification, and the optional credentials pair supplied
// with the request. It is constructed by the HTTP layer and consumed by the
// EPUB service; it has no lifecycle beyond the request that built it.
type EpubRequest struct {
	// URL is the full J-Novel Club series or part URL
	// (e.g. "https://j-novel.club/series/ascendance-of-a-bookworm").
	URL string

	// Parts is the optional prepublication part specification in the
	// generator's syntax (e.g. "3.2", "1:3"). Empty means the whole
	// resource addressed by URL.
	Parts string

	// Email and Password form the optional request-supplied credentials
	// pair. Both empty means "use the server environment"; exactly one set
	// is rejected as a partial pair.
	Email    string
	Password string

	// ClientIP is the remote address of the requester. Used only for the
	// per-client working directory layout and log records.
	ClientIP string
}

// EpubPayload is the prepared response body for a successful download: either
// a single EPUB passed through as-is or a ZIP bundle of several. The payload
// is fully buffered in memory so the working directory can be removed before
// the response is written.
type EpubPayload struct {
	// Filename is the attachment name sent in Content-Disposition.
	Filename string

	// MIMEType is "application/epub+zip" for a single file and
	// "application/zip" for a bundle.
	MIMEType string

	// Data holds the complete file or archive bytes.
	Data []byte
}
