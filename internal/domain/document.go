package domain

import (
	"encoding/json"
	"time"
)

// Document is a stored note document. Blocks holds the editor's block
// list as opaque JSON; the server never interprets it.
type Document struct {
	DocumentID string          `json:"document_id"`
	Title      string          `json:"title"`
	Blocks     json.RawMessage `json:"blocks,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// DocumentPatch carries a partial document update. Nil fields are left
// unchanged.
type DocumentPatch struct {
	Title  *string         `json:"title,omitempty"`
	Blocks json.RawMessage `json:"blocks,omitempty"`
}
