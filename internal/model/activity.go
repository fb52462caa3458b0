package model

import (
	"encoding/json"
	"time"
)

type ActivityType string

const (
	ActivityCreated    ActivityType = "CREATED"
	ActivityEdited     ActivityType = "EDITED"
	ActivityMoved      ActivityType = "MOVED"
	ActivityArchived   ActivityType = "ARCHIVED"
	ActivityUnarchived ActivityType = "UNARCHIVED"
)

// CardActivity is an append-only audit record. Before/After are kept opaque
// at this level; their shape depends on Type (see the payload types below).
type CardActivity struct {
	ID        string          `json:"id"`
	CardID    string          `json:"cardId"`
	Type      ActivityType    `json:"type"`
	Actor     string          `json:"actor"`
	Timestamp time.Time       `json:"timestamp"`
	Before    json.RawMessage `json:"before"`
	After     json.RawMessage `json:"after"`
}

// CardSnapshot is the `after` payload of a CREATED record.
type CardSnapshot struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Priority    Priority `json:"priority"`
	DueDate     *string  `json:"dueDate"`
	ColumnID    string   `json:"columnId"`
	Order       int      `json:"order"`
	Archived    bool     `json:"archived"`
}

// FieldChange is one entry of an EDITED diff map. EDITED records carry the
// whole diff in the `before` slot and leave `after` null.
type FieldChange struct {
	Before any `json:"before"`
	After  any `json:"after"`
}

// CardPosition is the before/after payload of a MOVED record.
type CardPosition struct {
	ColumnID string `json:"columnId"`
	Order    int    `json:"order"`
}

// ArchiveState is the before/after payload of ARCHIVED and UNARCHIVED records.
type ArchiveState struct {
	Archived bool   `json:"archived"`
	Order    int    `json:"order"`
	ColumnID string `json:"columnId"`
}
