package store

import "github.com/google/uuid"

// NewItemID returns a time-ordered random id (UUIDv7): a millisecond timestamp
// followed by random bits. Ids are opaque to every consumer.
func NewItemID() (string, error) {
	u, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
