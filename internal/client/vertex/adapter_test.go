package vertexclient

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"cloud.google.com/go/vertexai/genai"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestIsTransient(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"unavailable", status.Error(codes.Unavailable, "try later"), true},
		{"quota", status.Error(codes.ResourceExhausted, "quota"), true},
		{"deadline", fmt.Errorf("call: %w", context.DeadlineExceeded), true},
		{"permission", status.Error(codes.PermissionDenied, "nope"), false},
		{"plain", errors.New("boom"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isTransient(tc.err); got != tc.want {
				t.Fatalf("isTransient = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestParseContentResponse(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				FinishReason: genai.FinishReasonStop,
				Content: &genai.Content{
					Parts: []genai.Part{genai.Text("Cut "), genai.Text("dining out.")},
				},
			},
		},
	}

	text, reason := parseContentResponse(resp)
	if text != "Cut dining out." {
		t.Fatalf("text = %q", text)
	}
	if reason == "" {
		t.Fatal("expected a finish reason")
	}

	if text, _ := parseContentResponse(nil); text != "" {
		t.Fatalf("nil response text = %q", text)
	}
}
