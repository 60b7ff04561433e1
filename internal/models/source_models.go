package models

// The extraction service responses are heterogeneous across providers. Each
// extractor decodes exactly one of the shapes below and fails closed when the
// body does not fit.

// HLSSourcesResponse is the HLS-list shape: a flat list of renditions with a
// type discriminator.
type HLSSourcesResponse struct {
	Sources []HLSSource `json:"sources"`
}

type HLSSource struct {
	URL  string `json:"url"`
	Type string `json:"type"`
}

// MegaCloudResponse is the decryption/subtitle shape.
type MegaCloudResponse struct {
	Results MegaCloudResults `json:"results"`
}

type MegaCloudResults struct {
	StreamingInfo []MegaCloudCandidate `json:"streamingInfo"`
}

// MegaCloudCandidate describes one candidate rendition. Either field may be
// absent; selection probes both.
type MegaCloudCandidate struct {
	Value          *MegaCloudValue `json:"value,omitempty"`
	SubtitleResult *SubtitleResult `json:"subtitleResult,omitempty"`
}

type MegaCloudValue struct {
	DecryptionResult *DecryptionResult `json:"decryptionResult,omitempty"`
}

type DecryptionResult struct {
	Server string `json:"server"`
	Type   string `json:"type"`
	Link   string `json:"link"`
}

type SubtitleResult struct {
	Subtitles []Subtitle `json:"subtitles"`
}

type Subtitle struct {
	Kind  string `json:"kind"`
	Label string `json:"label"`
	File  string `json:"file"`
}
