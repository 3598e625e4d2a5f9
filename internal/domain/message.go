package domain

import "time"

// Kind discriminates the message variants. The values double as the "type"
// field of chat scripts and exports.
type Kind string

const (
	KindText      Kind = "text"
	KindImage     Kind = "image"
	KindFile      Kind = "file"
	KindVoiceCall Kind = "voice-call"
	KindVoiceNote Kind = "voice-message"
)

// Sender identifies which side of the conversation a message belongs to.
type Sender int

const (
	Other Sender = iota
	Me
)

func (s Sender) String() string {
	if s == Me {
		return "me"
	}
	return "other"
}

// ParseSender maps the wire value to a Sender. Anything but "me" counts as
// the conversation peer.
func ParseSender(s string) Sender {
	if s == "me" {
		return Me
	}
	return Other
}

// Status is the delivery state of a self-sent message. It has no meaning on
// incoming messages, and StatusUnset is displayed as read.
type Status int

const (
	StatusUnset Status = iota
	StatusSent
	StatusDelivered
	StatusRead
)

func (s Status) String() string {
	switch s {
	case StatusSent:
		return "sent"
	case StatusDelivered:
		return "delivered"
	case StatusRead:
		return "read"
	default:
		return ""
	}
}

// ParseStatus maps the wire value to a Status. Unknown values become
// StatusUnset, which downstream projection treats as read.
func ParseStatus(s string) Status {
	switch s {
	case "sent":
		return StatusSent
	case "delivered":
		return StatusDelivered
	case "read":
		return StatusRead
	default:
		return StatusUnset
	}
}

// Content is the variant-specific payload of a Message. One implementation
// exists per Kind, so field combinations that mix variants cannot be built.
type Content interface {
	Kind() Kind
}

// TextContent carries no fields; the display text lives in Message.Text.
type TextContent struct{}

// ImageContent is an image bubble. Message.Text is the optional caption.
type ImageContent struct {
	URL string
}

// FileContent is a document bubble. Size is a pre-formatted string such as
// "2.5 MB".
type FileContent struct {
	Name string
	Size string
}

// VoiceCallContent is a call entry. Minutes and Seconds are only ever set
// as a pair; SubTitle is a free-form duration string used when the numeric
// pair is missing. A call with neither is shown as not answered.
type VoiceCallContent struct {
	SubTitle string
	Minutes  *int
	Seconds  *int
}

// VoiceNoteContent is a recorded voice message. Waveform samples are in
// [0, 1] and already scaled by Amplitude at generation time. Frequency is
// the generation-time parameter, retained only for round-tripping.
type VoiceNoteContent struct {
	Duration  int
	Waveform  []float64
	Amplitude float64
	Frequency int
}

func (TextContent) Kind() Kind      { return KindText }
func (ImageContent) Kind() Kind     { return KindImage }
func (FileContent) Kind() Kind      { return KindFile }
func (VoiceCallContent) Kind() Kind { return KindVoiceCall }
func (VoiceNoteContent) Kind() Kind { return KindVoiceNote }

// Message is one entry of a chat. ID is unique within a chat and assigned
// at creation time; Timestamp determines render order, not insertion order.
type Message struct {
	ID        string
	Sender    Sender
	Timestamp time.Time
	Status    Status
	Text      string
	Content   Content
}

// Kind returns the variant of the message. A message without content is a
// plain text message.
func (m Message) Kind() Kind {
	if m.Content == nil {
		return KindText
	}
	return m.Content.Kind()
}
