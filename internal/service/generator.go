package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/campuscare/healthbot/internal/domain"
	"github.com/campuscare/healthbot/internal/insight"
	"github.com/campuscare/healthbot/internal/llm"
)

// Fixed user-facing texts. Raw error detail never reaches the user.
const (
	msgRedirect = "Sorry, I can only help with student health issues. Please ask me about topics like headaches, stress, diet, sleep, mental health, or other health-related concerns."

	msgNotConfigured = "I'm having trouble connecting to my AI service. Please make sure the API key is configured correctly."

	msgThrottled = "I'm receiving too many requests right now. Please wait a moment and try again."

	msgGenericFailure = "I'm having trouble processing your request right now. Please try again in a moment. If the problem persists, please contact support."
)

const systemPrompt = `You are a helpful AI health assistant specifically designed for students. Your role is to:

1. Provide helpful, accurate, and supportive health information
2. Focus on common student health issues like stress, sleep, diet, mental health, and basic physical health concerns
3. Always recommend consulting healthcare professionals for serious symptoms
4. Provide practical, actionable advice that students can implement
5. Be empathetic and understanding of student life challenges
6. Never provide specific medical diagnoses or replace professional medical advice
7. Encourage healthy lifestyle habits and self-care practices

IMPORTANT: Only respond to health-related queries. If asked about non-health topics, politely redirect to health-related assistance.

Guidelines:
- Keep responses concise but informative (2-4 sentences)
- Use a friendly, supportive tone
- Include practical tips when appropriate
- Always emphasize seeking professional help for serious concerns
- Consider the student context (academic stress, campus life, etc.)`

const (
	generateTemperature = 0.7
	generateTopP        = 0.9
	generateMaxTokens   = 300

	// personalizeWindow is how many past turns feed pattern and profile
	// analysis; transcriptWindow is how many appear verbatim in the prompt.
	personalizeWindow = 10
	transcriptWindow  = 3

	// transcriptClip bounds each quoted bot response in the prompt.
	transcriptClip = 100
)

// Generator composes the personalized system instruction and issues the main
// completion call.
type Generator struct {
	llm        llm.Client
	classifier *Classifier
	logger     *zap.Logger
}

// NewGenerator creates a new response generator
func NewGenerator(client llm.Client, classifier *Classifier, logger *zap.Logger) *Generator {
	return &Generator{llm: client, classifier: classifier, logger: logger}
}

// Generate runs the full pipeline for one message: classification, context
// building, and the completion call. It always returns a GenerationResult
// with user-safe text; it never raises.
func (g *Generator) Generate(ctx context.Context, message string, history []domain.ChatTurn) domain.GenerationResult {
	decision := g.classifier.Classify(ctx, message, history)
	if !decision.InScope {
		return domain.GenerationResult{Kind: domain.OutcomeRejected, Response: msgRedirect}
	}

	system := systemPrompt + personalizationBlock(domain.Tail(history, personalizeWindow))

	answer, err := g.llm.Complete(ctx, llm.CompletionRequest{
		System:      system,
		Prompt:      message,
		Temperature: generateTemperature,
		TopP:        generateTopP,
		MaxTokens:   generateMaxTokens,
	})
	if err != nil {
		g.logger.Error("completion call failed",
			zap.String("classification_path", string(decision.Path)),
			zap.Error(err),
		)
		return domain.GenerationResult{
			Kind:     domain.OutcomeFailure,
			Response: failureMessage(err),
			Err:      err,
		}
	}

	return domain.GenerationResult{Kind: domain.OutcomeSuccess, Response: strings.TrimSpace(answer)}
}

// personalizationBlock renders recurring concerns, profile insights and a
// condensed recent transcript. Empty when the window yields neither patterns
// nor profile fragments.
func personalizationBlock(recent []domain.ChatTurn) string {
	patterns := insight.AnalyzePatterns(recent)
	profile := insight.SynthesizeProfile(recent)

	if len(patterns) == 0 && len(profile) == 0 {
		return ""
	}

	var info []string
	if len(patterns) > 0 {
		info = append(info, "Recurring health concerns: "+strings.Join(patterns, ", "))
	}
	if len(profile) > 0 {
		info = append(info, "User profile: "+strings.Join(profile, "; "))
	}

	transcript := make([]string, 0, transcriptWindow)
	for _, turn := range domain.Tail(recent, transcriptWindow) {
		transcript = append(transcript, fmt.Sprintf("User: %q -> Bot: \"%s...\"",
			turn.UserMessage, clip(turn.BotResponse, transcriptClip)))
	}

	return "\n\nPERSONALIZED CONTEXT:\n" + strings.Join(info, "\n") +
		"\n\nRECENT CONVERSATIONS:\n" + strings.Join(transcript, "\n") +
		"\n\nPlease provide personalized advice considering this user's specific history, patterns, and previous discussions. Reference their past concerns when relevant and build upon previous advice given."
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func failureMessage(err error) string {
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		return msgNotConfigured
	case errors.Is(err, llm.ErrThrottled):
		return msgThrottled
	default:
		return msgGenericFailure
	}
}
