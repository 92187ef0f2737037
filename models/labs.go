package models

// LabsLoginRequest is the JSON body of POST /app/v2/auth/login on the
// J-Novel Club labs API.
type LabsLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LabsLoginResponse is the decoded body of POST /app/v2/auth/login on the
// J-Novel Club labs API. The id field doubles as the bearer token for
// subsequent authenticated calls, matching how the upstream service behaves.
type LabsLoginResponse struct {
	ID string `json:"id"`
}

// LabsVolume is one volume entry as returned by the labs API. Only the
// fields the purchase flow needs are decoded.
type LabsVolume struct {
	// LegacyID is the identifier accepted by the coin-redeem endpoint.
	LegacyID string `json:"legacyId"`

	// Slug is the URL-friendly volume identifier.
	Slug string `json:"slug"`

	// Number is the 1-based volume number within its series.
	Number int `json:"number"`

	// Title is the display title. Used only in log records.
	Title string `json:"title"`
}

// LabsVolumesResponse is the decoded body of
// GET /app/v2/series/{slug}/volumes.
type LabsVolumesResponse struct {
	Volumes []LabsVolume `json:"volumes"`
}
