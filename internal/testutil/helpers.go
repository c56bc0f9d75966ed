package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/sashabaranov/go-openai"
)

// ChatReply decides the answer of the fake OpenAI server for one request.
// A status other than 200 makes the server answer with an API error.
type ChatReply func(req openai.ChatCompletionRequest) (content string, status int)

// FakeOpenAI is an httptest server speaking the chat completions API
type FakeOpenAI struct {
	Server *httptest.Server

	mu       sync.Mutex
	requests []openai.ChatCompletionRequest
	models   []string
}

// NewFakeOpenAI starts a fake chat completions endpoint. Use URL() as the
// client base URL. The server is closed when the test ends.
func NewFakeOpenAI(t *testing.T, reply ChatReply) *FakeOpenAI {
	t.Helper()

	f := &FakeOpenAI{}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/models" {
			f.serveModels(w)
			return
		}
		if r.URL.Path != "/v1/chat/completions" {
			http.NotFound(w, r)
			return
		}

		var req openai.ChatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		f.mu.Lock()
		f.requests = append(f.requests, req)
		f.mu.Unlock()

		content, status := reply(req)
		w.Header().Set("Content-Type", "application/json")
		if status != http.StatusOK {
			w.WriteHeader(status)
			json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{
					"message": content,
					"type":    "server_error",
				},
			})
			return
		}

		json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			ID:     "chatcmpl-test",
			Object: "chat.completion",
			Model:  req.Model,
			Choices: []openai.ChatCompletionChoice{
				{
					Index: 0,
					Message: openai.ChatCompletionMessage{
						Role:    openai.ChatMessageRoleAssistant,
						Content: content,
					},
					FinishReason: openai.FinishReasonStop,
				},
			},
		})
	}))
	t.Cleanup(f.Server.Close)

	return f
}

// SetModels sets the model IDs served by the models endpoint
func (f *FakeOpenAI) SetModels(ids ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.models = ids
}

func (f *FakeOpenAI) serveModels(w http.ResponseWriter) {
	f.mu.Lock()
	list := openai.ModelsList{}
	for _, id := range f.models {
		list.Models = append(list.Models, openai.Model{ID: id, Object: "model", OwnedBy: "openai"})
	}
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// URL returns the base URL to configure the OpenAI client with
func (f *FakeOpenAI) URL() string {
	return f.Server.URL + "/v1"
}

// Requests returns a copy of all received requests
func (f *FakeOpenAI) Requests() []openai.ChatCompletionRequest {
	f.mu.Lock()
	defer f.mu.Unlock()

	requests := make([]openai.ChatCompletionRequest, len(f.requests))
	copy(requests, f.requests)
	return requests
}

// UserPrompt returns the content of the last user message of a request
func UserPrompt(req openai.ChatCompletionRequest) string {
	for i := len(req.Messages) - 1; i >= 0; i-- {
		if req.Messages[i].Role == openai.ChatMessageRoleUser {
			return req.Messages[i].Content
		}
	}
	return ""
}

// AssertContains checks if s contains a substring
func AssertContains(t *testing.T, s, substring string) {
	t.Helper()

	if !strings.Contains(s, substring) {
		t.Errorf("Expected output to contain %q\nGot: %q", substring, s)
	}
}

// AssertNotContains checks if s does not contain a substring
func AssertNotContains(t *testing.T, s, substring string) {
	t.Helper()

	if strings.Contains(s, substring) {
		t.Errorf("Expected output not to contain %q\nGot: %q", substring, s)
	}
}

// CaptureOutput captures stdout during test execution
func CaptureOutput(t *testing.T, f func()) string {
	t.Helper()

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w

	done := make(chan string)
	go func() {
		out, _ := io.ReadAll(r)
		done <- string(out)
	}()

	f()

	w.Close()
	os.Stdout = oldStdout
	return <-done
}
