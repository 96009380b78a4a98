package models

import "github.com/google/uuid"

// Following is a directed follow edge: FromID follows ToID.
// At most one edge exists per ordered (FromID, ToID) pair.
type Following struct {
	ID     uuid.UUID `json:"id"`
	FromID uuid.UUID `json:"from_id"`
	ToID   uuid.UUID `json:"to_id"`
}
