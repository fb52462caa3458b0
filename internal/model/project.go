package model

import "time"

type Project struct {
	ID          string    `json:"id"`
	BoardID     string    `json:"boardId"`
	Name        string    `json:"name"`
	KeyPrefix   string    `json:"keyPrefix"`
	Description string    `json:"description"`
	NextSeq     int       `json:"nextSeq"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type SpecStatus string

const (
	SpecDraft SpecStatus = "DRAFT"
	SpecSaved SpecStatus = "SAVED"
)

// ProjectSpec is the 1:1 markdown spec drafted in the project builder.
type ProjectSpec struct {
	ID        string     `json:"id"`
	ProjectID string     `json:"projectId"`
	Markdown  string     `json:"markdown"`
	Status    SpecStatus `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
