package models

import gonanoid "github.com/matoous/go-nanoid/v2"

// NewID returns a short unique identifier for a new entity.
func NewID() string {
	return gonanoid.Must(12)
}
