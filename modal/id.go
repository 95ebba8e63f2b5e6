package modal

import "github.com/google/uuid"

// newID returns an 8-hex-character identifier. The first uuid group is
// already lowercase hex, so the slice is safe.
func newID() string {
	return uuid.NewString()[:8]
}
