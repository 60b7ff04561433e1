package models

type AniwatchSuggestResponse struct {
	Suggestions []AniwatchSuggestion `json:"suggestions"`
}

// AniwatchSuggestion is one entry of the autosuggest list. MoreInfo carries
// display metadata; its first element is the formatted air date.
type AniwatchSuggestion struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	MoreInfo []string `json:"moreInfo"`
}

type AniwatchEpisodesResponse struct {
	Episodes []AniwatchEpisode `json:"episodes"`
}

type AniwatchEpisode struct {
	Number    int    `json:"number"`
	EpisodeID string `json:"episodeId"`
}
