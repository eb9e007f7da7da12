package models

type ContentIdea struct {
	ID                  string   `json:"id" yaml:"id"`
	Title               string   `json:"title" yaml:"title"`
	Description         string   `json:"description" yaml:"description"`
	Category            string   `json:"category" yaml:"category"`     // trending, personal, professional, creative
	EstimatedEngagement float64  `json:"estimatedEngagement" yaml:"estimatedEngagement"`
	Hashtags            []string `json:"hashtags" yaml:"hashtags"`
	Difficulty          string   `json:"difficulty" yaml:"difficulty"` // easy, medium, hard
}

func (i ContentIdea) Clone() ContentIdea {
	i.Hashtags = append([]string{}, i.Hashtags...)
	return i
}
