package domain

import (
	"sort"
	"strings"
)

// PlaceholderImageURL is used when a project is submitted without an image.
const PlaceholderImageURL = "https://placehold.co/600x400.png"

// Project represents a single portfolio entry.
// It is intentionally storage-agnostic and used across repository and HTTP layers.
type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Keywords     []string `json:"keywords"`
	ImageURL     string   `json:"imageUrl"`
	CreatedAt    string   `json:"createdAt"` // ISO-8601, assigned once at creation
}

// Draft holds the caller-supplied fields for a new project, before the
// repository assigns ID and CreatedAt.
type Draft struct {
	Title        string
	Description  string
	Technologies []string
	Keywords     []string
	ImageURL     string
}

// Validate enforces the required-field rules at the repository boundary.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return &ValidationError{Field: "title", Message: "title is required"}
	}
	if strings.TrimSpace(d.Description) == "" {
		return &ValidationError{Field: "description", Message: "description is required"}
	}
	if len(d.Technologies) == 0 {
		return &ValidationError{Field: "technologies", Message: "at least one technology is required"}
	}
	if strings.TrimSpace(d.ImageURL) == "" {
		return &ValidationError{Field: "imageUrl", Message: "imageUrl is required"}
	}
	return nil
}

// Patch carries a partial update. Nil fields are left untouched.
type Patch struct {
	Title        *string
	Description  *string
	Technologies *[]string
	Keywords     *[]string
	ImageURL     *string
}

// Apply merges the patch onto an existing record. ID and CreatedAt always
// carry over from the stored record.
func (p Patch) Apply(cur Project) Project {
	out := cur
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.Technologies != nil {
		out.Technologies = *p.Technologies
	}
	if p.Keywords != nil {
		out.Keywords = *p.Keywords
	}
	if p.ImageURL != nil {
		out.ImageURL = *p.ImageURL
	}
	return out
}

// SplitList parses a comma-separated form value into an ordered list.
// Entries are whitespace-trimmed, empties dropped, duplicates kept.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// SortNewestFirst orders projects by CreatedAt descending. RFC 3339 strings
// in UTC compare correctly as plain strings.
func SortNewestFirst(projects []Project) {
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].CreatedAt > projects[j].CreatedAt
	})
}
