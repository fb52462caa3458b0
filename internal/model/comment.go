package model

import "time"

type CardComment struct {
	ID        string    `json:"id"`
	CardID    string    `json:"cardId"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
