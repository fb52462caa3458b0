package model

import "time"

type Board struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Column struct {
	ID        string    `json:"id"`
	BoardID   string    `json:"boardId"`
	Name      string    `json:"name"`
	Order     int       `json:"order"`
	WIPLimit  *int      `json:"wipLimit"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BoardView is the assembled read model: columns in display order, each
// carrying its cards (active and archived) in display order.
type BoardView struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Columns  []ColumnView `json:"columns"`
	Projects []Project    `json:"projects"`
}

type ColumnView struct {
	Column
	Cards []Card `json:"cards"`
}
