package models

// Pagination defaults for note listing
const (
	DefaultNoteLimit = 10
	// MaxNoteLimit is a server-side cap on one page. Larger limits are
	// clamped to it rather than passed through to the query.
	MaxNoteLimit     = 100
)

// IdempotencyKeyHeader is required on note creation
const IdempotencyKeyHeader = "Idempotency-Key"

// Request types

type CreateProjectRequest struct {
	Name string `json:"name"`
}

// Nil fields are left unchanged
type UpdateProjectRequest struct {
	Name *string `json:"name"`
}

type CreateNoteRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	ProjectID int64  `json:"projectId"`
}

// NotePatch is a partial note update. A nil field, whether absent from the
// JSON body or sent as null, keeps the stored value.
type NotePatch struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	ProjectID *int64  `json:"projectId"`
}

// ListNotesParams filters and pages a project's notes
type ListNotesParams struct {
	ProjectID int64
	Cursor    int64 // 0 means no cursor
	Limit     int
	Search    string
}

// Domain types

type Project struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Note struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	ProjectID int64  `json:"projectId"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
