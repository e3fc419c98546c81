package domain

import "github.com/google/uuid"

// NewID generates an entity id with a human-readable kind prefix, e.g.
// "task_7f9c...". The suffix is a random UUID so ids stay collision-resistant
// under concurrent requests.
func NewID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}
