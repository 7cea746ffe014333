// pkg/api/types.go
package api

import "github.com/ozcomp/compintake/internal/extract"

// ImportRequest is the payload for POST /api/v1/import.
type ImportRequest struct {
	// URL is the competition page to import. Must be absolute.
	URL string `json:"url"`
}

// ImportResponse wraps the assembled draft record.
type ImportResponse struct {
	Record *extract.Competition `json:"record"`
}

// CreateRequest is the payload for POST /api/v1/competitions: the reviewed,
// possibly edited record to persist.
type CreateRequest struct {
	Record extract.Competition `json:"record"`
}

// CreateResponse acknowledges a persisted record.
type CreateResponse struct {
	Persisted bool   `json:"persisted"`
	Format    string `json:"format"`
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error      string `json:"error"`
	StatusCode int    `json:"upstream_status,omitempty"`
	Cause      string `json:"cause,omitempty"`
}
