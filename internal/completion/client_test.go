package completion_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"codeberg.org/snonux/wordexplorer/internal/completion"
	"codeberg.org/snonux/wordexplorer/internal/testutil"
)

func TestClientAsk(t *testing.T) {
	mock := &testutil.MockProvider{
		Responses: map[string]string{"CEFR": "\n  - **CEFR:** B2  \n"},
	}
	client := testutil.NewMockClient(mock)

	got, err := client.Ask(context.Background(), completion.TierFast, "Give the CEFR level")
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if got != "- **CEFR:** B2" {
		t.Errorf("Ask() = %q, want trimmed reply", got)
	}

	calls := mock.Calls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(calls))
	}
	if calls[0].Model != "gpt-3.5-turbo" {
		t.Errorf("fast tier model = %q", calls[0].Model)
	}
	if calls[0].System != completion.DefaultPersona {
		t.Errorf("System = %q", calls[0].System)
	}
	if calls[0].Temperature != 0.7 {
		t.Errorf("Temperature = %v", calls[0].Temperature)
	}
}

func TestClientAsk_ReasoningTier(t *testing.T) {
	mock := &testutil.MockProvider{}
	client := testutil.NewMockClient(mock)

	if _, err := client.Ask(context.Background(), completion.TierReasoning, "define"); err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if got := mock.Calls()[0].Model; got != "gpt-4.1-nano" {
		t.Errorf("reasoning tier model = %q", got)
	}
}

func TestClientAsk_EmptyResponse(t *testing.T) {
	mock := &testutil.MockProvider{
		Responses: map[string]string{"blank": "   \n"},
	}
	client := testutil.NewMockClient(mock)

	_, err := client.Ask(context.Background(), completion.TierFast, "blank please")
	if !errors.Is(err, completion.ErrEmptyResponse) {
		t.Errorf("expected ErrEmptyResponse, got %v", err)
	}
}

func TestClientAsk_ProviderError(t *testing.T) {
	apiErr := errors.New("invalid api key")
	mock := &testutil.MockProvider{
		Errors: map[string]error{"boom": apiErr},
	}
	client := testutil.NewMockClient(mock)

	_, err := client.Ask(context.Background(), completion.TierFast, "boom")
	if !errors.Is(err, apiErr) {
		t.Errorf("expected provider error, got %v", err)
	}
}

func TestClientAsk_Timeout(t *testing.T) {
	mock := &testutil.MockProvider{Delay: time.Second}
	config := completion.DefaultConfig()
	config.Timeout = 20 * time.Millisecond
	client := completion.NewClient(mock, config)

	start := time.Now()
	_, err := client.Ask(context.Background(), completion.TierFast, "slow")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
	if time.Since(start) > 500*time.Millisecond {
		t.Error("timeout was not applied")
	}
}

func TestClientProviderName(t *testing.T) {
	client := testutil.NewMockClient(&testutil.MockProvider{})
	if client.ProviderName() != "mock" {
		t.Errorf("ProviderName() = %q", client.ProviderName())
	}
}
