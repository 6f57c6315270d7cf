package enrich

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGenerator records whether the model was called and returns a canned
// reply.
type stubGenerator struct {
	reply  string
	err    error
	called bool
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	s.called = true
	return s.reply, s.err
}

func TestValidationHappensBeforeAnyCall(t *testing.T) {
	cases := []struct {
		name string
		call func(svc *Service) error
	}{
		{"improve with short description", func(svc *Service) error {
			_, err := svc.ImproveDescription(context.Background(), "short")
			return err
		}},
		{"keywords with short description", func(svc *Service) error {
			_, err := svc.SuggestKeywords(context.Background(), "too short")
			return err
		}},
		{"technologies with short description", func(svc *Service) error {
			_, err := svc.SuggestTechnologies(context.Background(), "")
			return err
		}},
		{"generate without title", func(svc *Service) error {
			_, err := svc.GenerateDescription(context.Background(), " ", "Go")
			return err
		}},
		{"generate without technologies", func(svc *Service) error {
			_, err := svc.GenerateDescription(context.Background(), "X", "")
			return err
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubGenerator{}
			err := tc.call(NewService(stub))

			require.ErrorIs(t, err, ErrInvalidInput)
			assert.False(t, stub.called, "invalid input must fail before any network call")
		})
	}
}

func TestGenerateDescription(t *testing.T) {
	stub := &stubGenerator{reply: "A compelling paragraph."}
	svc := NewService(stub)

	out, err := svc.GenerateDescription(context.Background(), "CosmicPic", "React, Node.js")
	require.NoError(t, err)
	assert.Equal(t, "A compelling paragraph.", out)
	assert.True(t, stub.called)
}

func TestGenerationFailureIsTyped(t *testing.T) {
	stub := &stubGenerator{err: fmt.Errorf("quota exceeded")}
	svc := NewService(stub)

	_, err := svc.ImproveDescription(context.Background(), "a perfectly long description")
	require.ErrorIs(t, err, ErrGeneration)

	_, err = svc.SuggestKeywords(context.Background(), "a perfectly long description")
	require.ErrorIs(t, err, ErrGeneration)
}

func TestSuggestKeywordsParsesList(t *testing.T) {
	t.Run("plain JSON array", func(t *testing.T) {
		svc := NewService(&stubGenerator{reply: `["space","NASA","react"]`})

		got, err := svc.SuggestKeywords(context.Background(), "a web app about space imagery")
		require.NoError(t, err)
		assert.Equal(t, []string{"space", "NASA", "react"}, got)
	})

	t.Run("array wrapped in a markdown fence", func(t *testing.T) {
		svc := NewService(&stubGenerator{reply: "```json\n[\"go\", \"redis\"]\n```"})

		got, err := svc.SuggestTechnologies(context.Background(), "a backend service with caching")
		require.NoError(t, err)
		assert.Equal(t, []string{"go", "redis"}, got)
	})

	t.Run("prose without an array fails", func(t *testing.T) {
		svc := NewService(&stubGenerator{reply: "here are some keywords: space, NASA"})

		_, err := svc.SuggestKeywords(context.Background(), "a web app about space imagery")
		require.ErrorIs(t, err, ErrGeneration)
	})

	t.Run("empty array fails", func(t *testing.T) {
		svc := NewService(&stubGenerator{reply: "[]"})

		_, err := svc.SuggestKeywords(context.Background(), "a web app about space imagery")
		require.ErrorIs(t, err, ErrGeneration)
	})
}
