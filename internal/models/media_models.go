package models

// MediaRequest describes one inbound resolution request. It is built from the
// Stremio stream route parameters and lives for the duration of one request.
type MediaRequest struct {
	IsMovie    bool
	ExternalID string
	Season     int
	Episode    int
}

// MediaMeta holds the canonical title and release (or first-air) date of a
// title, as reported by the metadata service.
type MediaMeta struct {
	Title       string
	ReleaseDate string // ISO date, YYYY-MM-DD
}
