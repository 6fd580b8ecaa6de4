package note

import (
	"fmt"
	"time"
)

const keyPrefix = "notes:%s:"

// Note is a stored note plus the id addressing it within the user's namespace
type Note struct {
	Key       string    `json:"key" example:"1a2b3c4d"`
	Text      string    `json:"text" example:"Buy milk"`
	CreatedAt time.Time `json:"createdAt" example:"2006-01-02T15:04:05Z"`
}

// Record is the persisted shape, serialized as JSON under notes:<userId>:<id>.
// The key scheme and this layout are the wire format shared with every front end.
type Record struct {
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// Prefix builds the namespace prefix isolating one user's notes
func Prefix(userID string) string {
	return fmt.Sprintf(keyPrefix, userID)
}

// Key builds the full store key for a note id
func Key(userID, id string) string {
	return Prefix(userID) + id
}
