package anthropic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageResponse_Text(t *testing.T) {
	resp := &MessageResponse{
		Content: []ContentBlock{
			{Type: "text", Text: "eerste "},
			{Type: "tool_use", Text: "genegeerd"},
			{Type: "text", Text: "tweede"},
		},
	}
	assert.Equal(t, "eerste tweede", resp.Text())

	assert.Empty(t, (&MessageResponse{}).Text())
}

func TestNewClient(t *testing.T) {
	client := NewClient("test-key")
	assert.NotNil(t, client)
}
