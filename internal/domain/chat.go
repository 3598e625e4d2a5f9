package domain

import (
	"strings"
	"time"
)

// Chat is the in-memory append log of a session. Messages keep their
// insertion order; display order is derived at render time. MyAvatar is
// the own-side avatar data URI the script carries, if any.
type Chat struct {
	Messages []Message
	MyAvatar string
}

// Append adds a message to the end of the log.
func (c *Chat) Append(msg Message) {
	c.Messages = append(c.Messages, msg)
}

// UpdateText replaces the text of the message with the given id and reports
// whether a change was applied. A missing id, empty text or unchanged text
// is a no-op. All other fields stay untouched.
func (c *Chat) UpdateText(id, text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	for i := range c.Messages {
		if c.Messages[i].ID != id {
			continue
		}
		if c.Messages[i].Text == text {
			return false
		}
		c.Messages[i].Text = text
		return true
	}
	return false
}

// Clear drops all messages.
func (c *Chat) Clear() {
	c.Messages = nil
}

// Filter returns a new Chat containing only messages within the given time
// range. nil values for from/to mean no lower/upper bound.
func (c *Chat) Filter(from, to *time.Time) *Chat {
	filtered := &Chat{MyAvatar: c.MyAvatar}
	for _, msg := range c.Messages {
		if from != nil && msg.Timestamp.Before(*from) {
			continue
		}
		if to != nil && msg.Timestamp.After(*to) {
			continue
		}
		filtered.Messages = append(filtered.Messages, msg)
	}
	return filtered
}
