package helpers

import "github.com/google/uuid"

// NewSessionToken generates a fresh opaque session token. The token carries no
// embedded structure; it is only ever compared by equality against the stored
// value.
func NewSessionToken() string {
	return uuid.NewString()
}
