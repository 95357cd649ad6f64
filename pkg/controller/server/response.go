package server

import (
	"time"

	"github.com/folio-dev/folio/pkg/domain/model"
	"github.com/folio-dev/folio/pkg/domain/types"
)

const (
	errInternal        = "internal_error"
	errInvalidRepo     = "invalid_repository"
	errRepoNotFound    = "Repository not found or inaccessible"
	errRateLimited     = "GitHub API rate limit exceeded"
	errUnavailable     = "GitHub API is unavailable"
	errRepoStatsFailed = "Failed to fetch repository statistics"
	errStatsFailed     = "Failed to fetch GitHub statistics"
)

type dataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type projectsResponse struct {
	Success   bool                  `json:"success"`
	Data      []*model.ProjectEntry `json:"data"`
	Type      types.CatalogType     `json:"type"`
	Count     int                   `json:"count"`
	Source    types.ProjectSource   `json:"source"`
	Timestamp time.Time             `json:"timestamp"`
}

// errorResponse always serialises success as false.
type errorResponse struct {
	Success  bool                  `json:"success"`
	Error    string                `json:"error"`
	Message  string                `json:"message,omitempty"`
	Fallback []*model.ProjectEntry `json:"fallback,omitempty"`
}
