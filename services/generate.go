package services

import (
	"fmt"
	"math"
	"strings"
	"time"

	"sociai/models"
)

var templates = map[string]string{
	models.ToneProfessional: "I'm excited to share insights on %s. Through careful analysis and industry research, I've discovered key strategies that can significantly impact business outcomes. Here are my top findings:\n\n1. Strategic implementation drives results\n2. Data-driven decisions create competitive advantages\n3. Continuous innovation ensures market leadership\n\nWhat are your thoughts on this approach?",
	models.ToneCreative:     "🎨 Let me paint you a picture about %s... \n\nImagine a world where creativity meets innovation! ✨ I've been exploring this fascinating topic and here's what sparked my imagination:\n\n🌟 Every challenge is a canvas waiting for a masterpiece\n🚀 Ideas flow like rivers, creating new landscapes of possibility\n💡 The magic happens when we dare to think differently\n\nWhat creative solutions have you discovered lately? Share your artistic journey! 🎭",
	models.ToneEducational:  "📚 Learning Series: Understanding %s\n\nToday, let's dive deep into this important topic. Here's what you need to know:\n\n🔍 Key Concepts:\n• Fundamental principles that matter\n• Real-world applications and examples\n• Common misconceptions to avoid\n\n💡 Quick Tip: Start with the basics and build your understanding step by step.\n\n🤔 Discussion Question: How has this knowledge impacted your work or projects?\n\nDrop your questions below - I love helping others learn! 📖",
	models.ToneCasual:       "Hey everyone! 👋\n\nI've been thinking about %s lately and wanted to share some thoughts with you all.\n\nHonestly, this stuff is pretty amazing when you really dive into it! Here's what I've learned:\n\n✅ It's more accessible than people think\n✅ The potential impact is huge\n✅ Getting started is easier than expected\n\nAnyone else exploring this? Would love to hear your experiences! Drop a comment below 👇\n\n#Learning #Growth #Community",
}

const wordsPerMinute = 200

// GenerateRequest is the body of POST /content/generate.
type GenerateRequest struct {
	Prompt   string   `json:"prompt"`
	Tone     string   `json:"tone"`
	Hashtags []string `json:"hashtags"`
}

// NormalizeTone maps empty and unknown tones to casual.
func NormalizeTone(tone string) string {
	if _, ok := templates[tone]; ok {
		return tone
	}
	return models.ToneCasual
}

// Generate fills the tone's template with the prompt and appends the
// hashtags as space-joined #tag tokens.
func Generate(req GenerateRequest, now time.Time) (*models.GeneratedContent, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, &ValidationError{Message: "Prompt is required", Fields: []string{"prompt"}}
	}

	tone := NormalizeTone(req.Tone)
	content := fmt.Sprintf(templates[tone], req.Prompt)

	hashtags := make([]string, 0, len(req.Hashtags))
	for _, tag := range req.Hashtags {
		tag = strings.TrimPrefix(strings.TrimSpace(tag), "#")
		if tag != "" {
			hashtags = append(hashtags, tag)
		}
	}
	if len(hashtags) > 0 {
		tokens := make([]string, len(hashtags))
		for i, tag := range hashtags {
			tokens[i] = "#" + tag
		}
		content += "\n\n" + strings.Join(tokens, " ")
	}

	words := len(strings.Split(content, " "))
	return &models.GeneratedContent{
		Content: content,
		Metadata: models.GenerationMetadata{
			Prompt:            req.Prompt,
			Tone:              tone,
			Hashtags:          hashtags,
			WordCount:         words,
			EstimatedReadTime: fmt.Sprintf("%d min", int(math.Ceil(float64(words)/wordsPerMinute))),
			GeneratedAt:       now.UTC().Format(time.RFC3339Nano),
		},
	}, nil
}
