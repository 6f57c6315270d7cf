package enrich

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const minDescriptionLen = 10

var (
	// ErrGeneration marks a model call that failed or returned unusable
	// output. Never swallowed into a placeholder value.
	ErrGeneration = errors.New("ai generation failed")

	// ErrInvalidInput marks input rejected before any network call.
	ErrInvalidInput = errors.New("invalid enrichment input")
)

// Generator is the single-turn prompt contract the façade needs from the
// model client.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service exposes the four enrichment operations for the admin forms.
type Service struct {
	llm Generator
}

func NewService(llm Generator) *Service {
	return &Service{llm: llm}
}

// GenerateDescription writes a one-paragraph portfolio description from a
// title and a comma-separated technology list.
func (s *Service) GenerateDescription(ctx context.Context, title, technologies string) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(technologies) == "" {
		return "", fmt.Errorf("%w: technologies are required", ErrInvalidInput)
	}

	prompt := fmt.Sprintf(`You are an expert copywriter specializing in technology projects.
Generate a compelling, one-paragraph project description based on the following information.
The description should be suitable for a portfolio.

Project Title: %s
Technologies Used: %s

Description:`, title, technologies)

	out, err := s.llm.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	return out, nil
}

// ImproveDescription rewrites an existing description to be more compelling.
func (s *Service) ImproveDescription(ctx context.Context, description string) (string, error) {
	if err := checkDescription(description); err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(`You are an AI assistant that helps improve project descriptions.

Please provide an improved version of the following project description, making it more compelling and informative:

Original Description: %s

Improved Description:`, description)

	out, err := s.llm.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	return out, nil
}

// SuggestKeywords returns 5-10 SEO keywords for a description.
func (s *Service) SuggestKeywords(ctx context.Context, description string) ([]string, error) {
	if err := checkDescription(description); err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(`You are an expert in SEO and can identify the most relevant keywords for a project.
Based on the following project description, suggest a list of 5-10 relevant keywords.
Return the list as a JSON array of strings.

Project Description:
%s

Suggested Keywords (JSON array of strings):`, description)

	return s.generateList(ctx, prompt)
}

// SuggestTechnologies returns 5-10 relevant technologies for a description.
func (s *Service) SuggestTechnologies(ctx context.Context, description string) ([]string, error) {
	if err := checkDescription(description); err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(`You are an expert in software development and can identify the most relevant technologies for a project.
Based on the following project description, suggest a list of 5-10 relevant technologies.
Return the list as a JSON array of strings.

Project Description:
%s

Suggested Technologies (JSON array of strings):`, description)

	return s.generateList(ctx, prompt)
}

func (s *Service) generateList(ctx context.Context, prompt string) ([]string, error) {
	out, err := s.llm.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	list, err := parseStringArray(out)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	return list, nil
}

func checkDescription(description string) error {
	if len(strings.TrimSpace(description)) < minDescriptionLen {
		return fmt.Errorf("%w: description must be at least %d characters", ErrInvalidInput, minDescriptionLen)
	}
	return nil
}

// parseStringArray extracts a JSON string array from model output, tolerating
// surrounding prose and markdown code fences.
func parseStringArray(out string) ([]string, error) {
	start := strings.Index(out, "[")
	end := strings.LastIndex(out, "]")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON array in model output")
	}

	var list []string
	if err := json.Unmarshal([]byte(out[start:end+1]), &list); err != nil {
		return nil, fmt.Errorf("parse model output: %v", err)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("model returned an empty list")
	}
	return list, nil
}
