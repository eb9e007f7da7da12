package models

// Tones understood by the content generator.
const (
	ToneProfessional = "professional"
	ToneCasual       = "casual"
	ToneCreative     = "creative"
	ToneEducational  = "educational"
)

type GenerationMetadata struct {
	Prompt            string   `json:"prompt"`
	Tone              string   `json:"tone"`
	Hashtags          []string `json:"hashtags"`
	WordCount         int      `json:"wordCount"`
	EstimatedReadTime string   `json:"estimatedReadTime"`
	GeneratedAt       string   `json:"generatedAt"`
}

type GeneratedContent struct {
	Content  string             `json:"content"`
	Metadata GenerationMetadata `json:"metadata"`
}

// ContentTemplate is a fill-in-the-blanks post skeleton. Variables name the
// {placeholders} in Template. Type is post, thread, poll or story.
type ContentTemplate struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Type        string   `json:"type" yaml:"type"`
	Template    string   `json:"template" yaml:"template"`
	Variables   []string `json:"variables" yaml:"variables"`
}

func (t ContentTemplate) Clone() ContentTemplate {
	t.Variables = append([]string{}, t.Variables...)
	return t
}

type DayEngagement struct {
	Day        string `json:"day" yaml:"day"`
	Engagement int    `json:"engagement" yaml:"engagement"`
}

type ContentPerformance struct {
	Type          string `json:"type" yaml:"type"`
	AvgEngagement int    `json:"avgEngagement" yaml:"avgEngagement"`
}

// ContentAnalytics backs the creator's analytics tab.
type ContentAnalytics struct {
	BestPostingTimes   []string             `json:"bestPostingTimes" yaml:"bestPostingTimes"`
	TopHashtags        []string             `json:"topHashtags" yaml:"topHashtags"`
	EngagementTrends   []DayEngagement      `json:"engagementTrends" yaml:"engagementTrends"`
	ContentPerformance []ContentPerformance `json:"contentPerformance" yaml:"contentPerformance"`
}
