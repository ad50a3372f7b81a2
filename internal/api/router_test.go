package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/campuscare/healthbot/internal/config"
	"github.com/campuscare/healthbot/internal/llm"
	"github.com/campuscare/healthbot/internal/repository"
	"github.com/campuscare/healthbot/internal/service"
)

// scriptedLLM replays canned completions in order.
type scriptedLLM struct {
	answers []string
	calls   int
}

func (s *scriptedLLM) Complete(_ context.Context, _ llm.CompletionRequest) (string, error) {
	if s.calls < len(s.answers) {
		answer := s.answers[s.calls]
		s.calls++
		return answer, nil
	}
	s.calls++
	return "", llm.ErrUnavailable
}

func newTestRouter(t *testing.T, client llm.Client) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := repository.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	logger := zap.NewNop()
	classifier := service.NewClassifier(client, logger)
	generator := service.NewGenerator(client, classifier, logger)

	authService := service.NewAuthService(repository.NewUserRepository(db), config.AuthConfig{
		Secret:        "test-secret",
		TokenTTLHours: 1,
	})
	chatService := service.NewChatService(repository.NewChatRepository(db), generator, logger)

	return SetupRouter(authService, chatService, RouterConfig{AllowOrigins: []string{"*"}})
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func TestChatEndpointsRequireSession(t *testing.T) {
	router := newTestRouter(t, &scriptedLLM{})

	for _, path := range []string{"/api/chat-history", "/api/health-suggestions"} {
		w := doJSON(t, router, http.MethodGet, path, nil, nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected 401, got %d", path, w.Code)
		}
	}

	w := doJSON(t, router, http.MethodPost, "/api/chat", map[string]string{"message": "hello"}, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("/api/chat: expected 401, got %d", w.Code)
	}
}

func TestRegisterLoginChatFlow(t *testing.T) {
	mock := &scriptedLLM{answers: []string{
		"YES",
		"Build a steady routine and take breaks while studying.",
	}}
	router := newTestRouter(t, mock)

	// Register opens a session.
	w := doJSON(t, router, http.MethodPost, "/api/register",
		map[string]string{"username": "alice", "password": "pw"}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("register: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("register should set a session cookie")
	}

	// Chat with the session.
	w = doJSON(t, router, http.MethodPost, "/api/chat",
		map[string]string{"message": "My exam preparation keeps me awake at night, what can I do?"}, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("chat: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := decode(t, w)
	if resp["success"] != true || resp["response"] == "" {
		t.Errorf("unexpected chat response: %v", resp)
	}

	// History shows the exchange.
	w = doJSON(t, router, http.MethodGet, "/api/chat-history", nil, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("history: expected 200, got %d", w.Code)
	}
	history := decode(t, w)
	chats, _ := history["chats"].([]any)
	if len(chats) != 1 {
		t.Errorf("expected 1 stored chat, got %d", len(chats))
	}
}

func TestDuplicateRegistrationRejected(t *testing.T) {
	router := newTestRouter(t, &scriptedLLM{})

	creds := map[string]string{"username": "alice", "password": "pw"}
	if w := doJSON(t, router, http.MethodPost, "/api/register", creds, nil); w.Code != http.StatusOK {
		t.Fatalf("first register failed: %d", w.Code)
	}
	if w := doJSON(t, router, http.MethodPost, "/api/register", creds, nil); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for duplicate username, got %d", w.Code)
	}
}

func TestAuthStatusLifecycle(t *testing.T) {
	router := newTestRouter(t, &scriptedLLM{})

	// Anonymous.
	w := doJSON(t, router, http.MethodGet, "/api/auth-status", nil, nil)
	if status := decode(t, w); status["authenticated"] != false {
		t.Errorf("expected unauthenticated, got %v", status)
	}

	// Logged in.
	w = doJSON(t, router, http.MethodPost, "/api/login", map[string]string{"username": "alice", "password": "pw"}, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("login before registration should fail, got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodPost, "/api/register", map[string]string{"username": "alice", "password": "pw"}, nil)
	cookies := w.Result().Cookies()

	w = doJSON(t, router, http.MethodGet, "/api/auth-status", nil, cookies)
	status := decode(t, w)
	if status["authenticated"] != true || status["username"] != "alice" {
		t.Errorf("expected authenticated alice, got %v", status)
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t, &scriptedLLM{})

	w := doJSON(t, router, http.MethodGet, "/health", nil, nil)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}
