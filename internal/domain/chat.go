package domain

import "time"

// ChatTurn represents one stored exchange: the user's message and the
// assistant's reply.
type ChatTurn struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	UserMessage string    `json:"user_message"`
	BotResponse string    `json:"bot_response"`
	CreatedAt   time.Time `json:"timestamp"`
}

// Tail returns the most recent n turns of an oldest-first history window.
// Repositories always return turns oldest-first; consumers slice off the
// suffix they need (3 for classification context, 10 for personalization,
// 20 for suggestions).
func Tail(turns []ChatTurn, n int) []ChatTurn {
	if n <= 0 || len(turns) <= n {
		return turns
	}
	return turns[len(turns)-n:]
}

// DecisionPath records which branch of the relevance classifier produced a
// verdict.
type DecisionPath string

const (
	// PathGreeting is the fast-path greeting check, taken before any model call.
	PathGreeting DecisionPath = "greeting"
	// PathModel is a verdict returned by the classification model.
	PathModel DecisionPath = "model"
	// PathFallback is the keyword heuristic used when the model call fails.
	PathFallback DecisionPath = "fallback"
)

// Decision is the outcome of relevance classification for one message.
// It lives only for the duration of a single request.
type Decision struct {
	InScope bool
	Path    DecisionPath
}

// OutcomeKind tags a GenerationResult.
type OutcomeKind string

const (
	// OutcomeSuccess means the model produced a usable reply.
	OutcomeSuccess OutcomeKind = "success"
	// OutcomeRejected means the message was classified out of scope.
	OutcomeRejected OutcomeKind = "rejected"
	// OutcomeFailure means the completion call failed.
	OutcomeFailure OutcomeKind = "failure"
)

// GenerationResult is the unit returned by the response generator. Response
// always holds user-safe text, never raw error detail; Err carries the
// underlying cause on the failure path for logging.
type GenerationResult struct {
	Kind     OutcomeKind
	Response string
	Err      error
}

// OK reports whether the result carries a model-generated reply.
func (r GenerationResult) OK() bool {
	return r.Kind == OutcomeSuccess
}

// ChatRequest is the request to send a chat message.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatResponse is the response from a chat message. Success is true for
// rejected and failed exchanges too: the user-facing text is the payload
// and HTTP 200 is the transport, matching the client contract.
type ChatResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
}

// HistoryResponse lists a user's recent turns, most recent first.
type HistoryResponse struct {
	Success bool       `json:"success"`
	Chats   []ChatTurn `json:"chats"`
}

// SuggestionsResponse carries personalized tips derived from recurring
// concern tags.
type SuggestionsResponse struct {
	Success     bool     `json:"success"`
	Suggestions []string `json:"suggestions"`
	Patterns    []string `json:"patterns"`
}
