// Package constants defines application-wide constants and default values.
package constants

const (
	// Addon metadata
	AddonID          = "org.janime"
	AddonVersion     = "1.0.0"
	AddonName        = "jAnime"
	AddonDescription = "Resolves movies and series to Aniwatch streams using TMDB metadata"

	// Default configuration values
	DefaultPort            = "7000"
	DefaultAniwatchAPIURL  = "https://api-aniwatch.onrender.com"
	DefaultExtractorAPIURL = "https://anime-api-k3tm.onrender.com"

	// TMDB
	TMDBBaseURL = "https://api.themoviedb.org/3"

	// Branding label attached to every resolved stream. The title is fixed,
	// not derived from content.
	StreamTitle = "🎞️ Aniwatch - Auto"
)

// Extractor kinds, one per extraction service response shape.
const (
	ExtractorHLS       = "hls"
	ExtractorMegaCloud = "megacloud"
)

// Source selection markers.
const (
	// HLSStreamType marks a playlist stream in the HLS-list response shape.
	HLSStreamType = "hls"

	// TrustedServer and SubbedTrackType identify the preferred decryption
	// result in the MegaCloud response shape.
	TrustedServer   = "Vidcloud"
	SubbedTrackType = "sub"

	// CaptionsKind and CaptionsLabel identify the fallback subtitle track.
	CaptionsKind  = "captions"
	CaptionsLabel = "English"
)
