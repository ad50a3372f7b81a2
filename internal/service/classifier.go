package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/campuscare/healthbot/internal/domain"
	"github.com/campuscare/healthbot/internal/llm"
)

// greetings pass classification immediately when the message is short,
// before any model call is issued.
var greetings = []string{
	"hi", "hello", "hey", "good morning", "good afternoon", "good evening",
	"how are you", "thanks", "thank you", "bye", "goodbye",
}

// fallbackTerms gate the heuristic used when the classification call fails.
// Deliberately permissive: an ambiguous short message from a struggling user
// should get through rather than be blocked.
var fallbackTerms = []string{
	"hi", "hello", "hey", "health", "sick", "pain", "stress", "tired",
	"sleep", "diet", "feel", "help", "advice", "solution", "what", "how", "why",
}

const classificationPrompt = `You are a health chatbot classifier. Determine if this user message should be handled by a health assistant.

Respond with ONLY "YES" or "NO".

Say YES for:
- Health symptoms, concerns, or questions
- Mental health topics (stress, anxiety, mood)
- Wellness and lifestyle (sleep, diet, exercise)
- Student health issues (study stress, academic pressure)
- Medical questions or advice requests
- Greetings and polite conversation starters
- Follow-up health questions (like "what is the solution", "how do I fix this", "what should I do")
- Continuation of previous health discussions

Say NO for:
- Academic homework help (math, science, coding)
- Technology troubleshooting
- General knowledge questions unrelated to health
- Entertainment, sports, weather (unless health-related)
- Business or financial advice

Current user message: "%s"%s

Answer:`

const (
	// greetingMaxLen bounds the fast-path: longer messages that merely
	// contain a greeting still go through the model.
	greetingMaxLen = 50
	// fallbackShortLen lets very short messages through when the model is
	// unreachable.
	fallbackShortLen = 20

	classifyTemperature = 0.2
	classifyTopP        = 0.9
	classifyMaxTokens   = 5
	classifyContextSize = 3
)

// Classifier decides whether an incoming message is in scope for the health
// assistant.
type Classifier struct {
	llm    llm.Client
	logger *zap.Logger
}

// NewClassifier creates a new relevance classifier
func NewClassifier(client llm.Client, logger *zap.Logger) *Classifier {
	return &Classifier{llm: client, logger: logger}
}

// Classify returns a scope verdict for one message. Model-call failures are
// absorbed into the fallback heuristic and never surface to the caller.
func (c *Classifier) Classify(ctx context.Context, message string, history []domain.ChatTurn) domain.Decision {
	lowered := strings.ToLower(strings.TrimSpace(message))

	// Fast-path: obvious greetings skip the model entirely.
	if len(message) < greetingMaxLen {
		for _, greeting := range greetings {
			if strings.Contains(lowered, greeting) {
				return domain.Decision{InScope: true, Path: domain.PathGreeting}
			}
		}
	}

	prompt := fmt.Sprintf(classificationPrompt, message, contextBlock(history))

	answer, err := c.llm.Complete(ctx, llm.CompletionRequest{
		Prompt:      prompt,
		Temperature: classifyTemperature,
		TopP:        classifyTopP,
		MaxTokens:   classifyMaxTokens,
	})
	if err != nil {
		c.logger.Warn("classification call failed, using keyword fallback", zap.Error(err))
		return domain.Decision{InScope: c.fallback(lowered, message), Path: domain.PathFallback}
	}

	// Anything but an exact YES is out of scope, malformed output included.
	verdict := strings.ToUpper(strings.TrimSpace(answer)) == "YES"
	return domain.Decision{InScope: verdict, Path: domain.PathModel}
}

// contextBlock renders the last few turns as alternating user/bot lines,
// oldest of the slice first.
func contextBlock(history []domain.ChatTurn) string {
	recent := domain.Tail(history, classifyContextSize)
	if len(recent) == 0 {
		return ""
	}

	lines := make([]string, 0, len(recent))
	for _, turn := range recent {
		lines = append(lines, fmt.Sprintf("User: %s\nBot: %s", turn.UserMessage, turn.BotResponse))
	}
	return "\n\nRecent conversation context:\n" + strings.Join(lines, "\n")
}

func (c *Classifier) fallback(lowered, original string) bool {
	for _, term := range fallbackTerms {
		if strings.Contains(lowered, term) {
			return true
		}
	}
	return len(original) < fallbackShortLen
}
