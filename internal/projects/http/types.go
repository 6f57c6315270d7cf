package http

import "github.com/folioforge/portfolio-backend/internal/projects/domain"

// createReq mirrors the admin add-project form: technologies and keywords
// are comma-separated strings, split server-side.
type createReq struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
	Keywords     string `json:"keywords"`
	ImageURL     string `json:"imageUrl"`
}

type updateReq struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Technologies *string `json:"technologies"`
	Keywords     *string `json:"keywords"`
	ImageURL     *string `json:"imageUrl"`
}

type importReq struct {
	Projects []domain.Project `json:"projects"`
}
