package extract

import (
	"context"
	"fmt"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/routeworks/docscan/pkg/anthropic"
)

// --- Anthropic Mock ---

type mockAnthropicClient struct {
	mock.Mock
}

func (m *mockAnthropicClient) CreateMessage(ctx context.Context, req anthropic.MessageRequest) (*anthropic.MessageResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*anthropic.MessageResponse), args.Error(1)
}

func textResponse(text string) *anthropic.MessageResponse {
	return &anthropic.MessageResponse{
		Content: []anthropic.ContentBlock{{Type: "text", Text: text}},
	}
}

// --- Deterministic IDs and clock ---

type seqIDSource struct{}

func (seqIDSource) TaskID(index int) string { return fmt.Sprintf("TASK-%d", index) }
func (seqIDSource) AutoRef() string         { return "AUTO-1" }

var testNow = func() time.Time {
	return time.Date(2025, 10, 10, 12, 0, 0, 0, time.UTC)
}

func newTestAnalyzer(client anthropic.Client) *Analyzer {
	gaz, err := LoadGazetteer("")
	if err != nil {
		panic(err)
	}
	return NewAnalyzer(client, gaz, Config{}, WithIDSource(seqIDSource{}), WithClock(testNow))
}
