// Package script loads chat scripts: JSON documents with a contact and a
// flat list of message records, the same shape the exporter writes.
package script

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"github.com/Annamarie223sd/WhatsAppTest/internal/domain"
	"github.com/Annamarie223sd/WhatsAppTest/internal/waveform"
)

// Timestamp layouts tried in order. The second matches the datetime-local
// form values found in hand-written scripts.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// Parser reads chat scripts into the domain model. Malformed records
// degrade to documented defaults instead of failing the whole script; only
// unreadable or non-JSON input is an error.
type Parser struct {
	log zerolog.Logger
	now func() time.Time
}

func NewParser(log zerolog.Logger) *Parser {
	return &Parser{log: log, now: time.Now}
}

func (p *Parser) Parse(path string) (domain.Contact, *domain.Chat, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Contact{}, nil, fmt.Errorf("reading script: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return domain.Contact{}, nil, fmt.Errorf("script %s is not valid JSON", path)
	}

	root := gjson.ParseBytes(data)
	contact := parseContact(root.Get("contact"))

	chat := &domain.Chat{MyAvatar: root.Get("myAvatar").String()}
	for _, raw := range root.Get("messages").Array() {
		if msg, ok := p.parseMessage(raw); ok {
			chat.Append(msg)
		}
	}
	return contact, chat, nil
}

func parseContact(raw gjson.Result) domain.Contact {
	return domain.Contact{
		ID:           raw.Get("id").String(),
		Name:         raw.Get("name").String(),
		Avatar:       raw.Get("avatar").String(),
		Status:       raw.Get("status").String(),
		CustomStatus: raw.Get("customStatus").String(),
	}
}

func (p *Parser) parseMessage(raw gjson.Result) (domain.Message, bool) {
	msg := domain.Message{
		ID:     raw.Get("id").String(),
		Text:   raw.Get("text").String(),
		Sender: domain.ParseSender(raw.Get("sender").String()),
		Status: domain.ParseStatus(raw.Get("status").String()),
	}
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	msg.Timestamp = p.parseTimestamp(msg.ID, raw.Get("timestamp"))

	kind := raw.Get("type").String()
	if kind == "" {
		kind = string(domain.KindText)
	}

	switch domain.Kind(kind) {
	case domain.KindText:
		msg.Content = domain.TextContent{}

	case domain.KindImage:
		msg.Content = domain.ImageContent{URL: raw.Get("imageUrl").String()}

	case domain.KindFile:
		msg.Content = domain.FileContent{
			Name: raw.Get("fileName").String(),
			Size: raw.Get("fileSize").String(),
		}

	case domain.KindVoiceCall:
		content := domain.VoiceCallContent{SubTitle: raw.Get("subTitle").String()}
		minutes, seconds := raw.Get("minutes"), raw.Get("seconds")
		if minutes.Exists() && seconds.Exists() {
			m, s := int(minutes.Int()), int(seconds.Int())
			content.Minutes, content.Seconds = &m, &s
		}
		msg.Content = content

	case domain.KindVoiceNote:
		content, err := parseVoiceNote(raw)
		if err != nil {
			p.log.Warn().Str("id", msg.ID).Err(err).Msg("skipping voice message")
			return domain.Message{}, false
		}
		msg.Content = content

	default:
		p.log.Warn().Str("id", msg.ID).Str("type", kind).Msg("skipping message of unknown type")
		return domain.Message{}, false
	}

	return msg, true
}

func parseVoiceNote(raw gjson.Result) (domain.VoiceNoteContent, error) {
	duration := int(raw.Get("duration").Int())
	if duration <= 0 {
		return domain.VoiceNoteContent{}, fmt.Errorf("duration must be at least one second, got %d", duration)
	}

	amplitude := 0.5
	if a := raw.Get("amplitude"); a.Exists() {
		amplitude = waveform.ClampAmplitude(a.Float())
	}
	frequency := 5
	if f := raw.Get("frequency"); f.Exists() {
		frequency = waveform.ClampFrequency(int(f.Int()))
	}

	var samples []float64
	for _, v := range raw.Get("waveform").Array() {
		samples = append(samples, v.Float())
	}
	if len(samples) == 0 {
		samples = waveform.Generate(waveform.Points, amplitude, frequency)
	}

	return domain.VoiceNoteContent{
		Duration:  duration,
		Waveform:  samples,
		Amplitude: amplitude,
		Frequency: frequency,
	}, nil
}

// parseTimestamp tolerates missing and unparseable timestamps by falling
// back to the current time; the composer never sees an invalid value.
func (p *Parser) parseTimestamp(id string, raw gjson.Result) time.Time {
	if !raw.Exists() || raw.String() == "" {
		return p.now()
	}
	if raw.Type == gjson.Number {
		return time.UnixMilli(raw.Int())
	}
	for _, layout := range timeLayouts {
		if ts, err := time.ParseInLocation(layout, raw.String(), time.Local); err == nil {
			return ts
		}
	}
	p.log.Warn().Str("id", id).Str("timestamp", raw.String()).Msg("unparseable timestamp, using current time")
	return p.now()
}
