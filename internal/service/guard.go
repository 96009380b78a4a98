package service

import "github.com/google/uuid"

// Authorize is the ownership check applied before any mutation of an owned
// resource. Pure comparison, no I/O.
func Authorize(actorID, ownerID uuid.UUID) error {
	if actorID != ownerID {
		return ErrCantDoThis
	}
	return nil
}
