package domain

import (
	"io"
	"time"
)

// ScriptParser loads a chat script into a contact and message log.
type ScriptParser interface {
	Parse(path string) (Contact, *Chat, error)
}

// ChatExporter writes a full dump of the session for download or reuse as a
// script.
type ChatExporter interface {
	Export(w io.Writer, contact Contact, chat *Chat, exportDate time.Time) error
}
