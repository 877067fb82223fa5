package model

// Article is one entry in the assembled newsletter. The JSON shape doubles
// as the persisted layout of the article list, so field names stay stable.
type Article struct {
	ID              string   `json:"id"`
	Headline        string   `json:"headline"`
	Summary         string   `json:"summary"`
	ImageSuggestion string   `json:"imageSuggestion"`
	ImageURL        string   `json:"imageUrl,omitempty"`
	SourceURL       string   `json:"sourceUrl,omitempty"`
	AvailableImages []string `json:"availableImages"`
	ImageQueries    []string `json:"imageQueries"`
}
