package domain

import "time"

// Division is a top-level organizational container.
type Division struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	SortOrder int       `json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Section belongs to a Division; members reference sections by nullable id.
type Section struct {
	ID         string    `json:"id"`
	DivisionID string    `json:"divisionId"`
	Name       string    `json:"name"`
	SortOrder  int       `json:"sortOrder"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
