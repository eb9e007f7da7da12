package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var generatedAt = time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC)

func TestGenerateProfessional(t *testing.T) {
	out, err := Generate(GenerateRequest{Prompt: "testing", Tone: "professional"}, generatedAt)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out.Content, "I'm excited to share insights on testing."))
	assert.Equal(t, "professional", out.Metadata.Tone)
	assert.Equal(t, "testing", out.Metadata.Prompt)
	assert.Equal(t, "2024-01-20T10:00:00Z", out.Metadata.GeneratedAt)
	assert.Empty(t, out.Metadata.Hashtags)
}

func TestGenerateCreativeWithHashtags(t *testing.T) {
	out, err := Generate(GenerateRequest{
		Prompt:   "cities",
		Tone:     "creative",
		Hashtags: []string{"Art", "#Design"},
	}, generatedAt)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out.Content, "🎨 Let me paint you a picture about cities..."))
	assert.Contains(t, out.Content, "🌟 Every challenge is a canvas")
	assert.True(t, strings.HasSuffix(out.Content, "🎭\n\n#Art #Design"))
	assert.Equal(t, []string{"Art", "Design"}, out.Metadata.Hashtags)
}

func TestGenerateCreativeWithoutHashtags(t *testing.T) {
	out, err := Generate(GenerateRequest{Prompt: "cities", Tone: "creative", Hashtags: []string{}}, generatedAt)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(out.Content, "Share your artistic journey! 🎭"))
	assert.NotContains(t, out.Content, "#")
}

func TestGenerateToneFallback(t *testing.T) {
	for _, tone := range []string{"", "sarcastic"} {
		out, err := Generate(GenerateRequest{Prompt: "Go", Tone: tone}, generatedAt)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out.Content, "Hey everyone! 👋"))
		assert.Equal(t, "casual", out.Metadata.Tone)
	}
}

func TestGenerateEducational(t *testing.T) {
	out, err := Generate(GenerateRequest{Prompt: "channels", Tone: "educational"}, generatedAt)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.Content, "📚 Learning Series: Understanding channels"))
}

func TestGenerateMetadata(t *testing.T) {
	out, err := Generate(GenerateRequest{Prompt: "testing", Tone: "professional"}, generatedAt)
	require.NoError(t, err)

	words := len(strings.Split(out.Content, " "))
	assert.Equal(t, words, out.Metadata.WordCount)
	assert.Equal(t, "1 min", out.Metadata.EstimatedReadTime)

	long, err := Generate(GenerateRequest{Prompt: strings.Repeat("word ", 300)}, generatedAt)
	require.NoError(t, err)
	assert.Equal(t, "2 min", long.Metadata.EstimatedReadTime)
}

func TestGenerateRequiresPrompt(t *testing.T) {
	for _, prompt := range []string{"", "   ", "\n\t"} {
		_, err := Generate(GenerateRequest{Prompt: prompt}, generatedAt)
		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "Prompt is required", verr.Message)
	}
}
