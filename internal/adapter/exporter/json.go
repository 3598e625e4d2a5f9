// Package exporter dumps a session as indented JSON. The output is
// field-for-field compatible with the chat-script format, so exports can be
// rendered again without conversion.
package exporter

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/Annamarie223sd/WhatsAppTest/internal/domain"
)

type contactRecord struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name"`
	Avatar       string `json:"avatar,omitempty"`
	Status       string `json:"status,omitempty"`
	CustomStatus string `json:"customStatus,omitempty"`
}

// messageRecord is the flat wire shape of a message: the variant payload
// spread into optional fields selected by Type.
type messageRecord struct {
	ID        string    `json:"id"`
	Text      string    `json:"text,omitempty"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
	Type      string    `json:"type"`
	Status    string    `json:"status,omitempty"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	FileName  string    `json:"fileName,omitempty"`
	FileSize  string    `json:"fileSize,omitempty"`
	SubTitle  string    `json:"subTitle,omitempty"`
	Minutes   *int      `json:"minutes,omitempty"`
	Seconds   *int      `json:"seconds,omitempty"`
	Duration  int       `json:"duration,omitempty"`
	Waveform  []float64 `json:"waveform,omitempty"`
	Amplitude float64   `json:"amplitude,omitempty"`
	Frequency int       `json:"frequency,omitempty"`
}

type export struct {
	Contact    contactRecord   `json:"contact"`
	MyAvatar   string          `json:"myAvatar,omitempty"`
	Messages   []messageRecord `json:"messages"`
	ExportDate time.Time       `json:"exportDate"`
}

// JSONExporter implements domain.ChatExporter.
type JSONExporter struct{}

func (JSONExporter) Export(w io.Writer, contact domain.Contact, chat *domain.Chat, exportDate time.Time) error {
	dump := export{
		Contact: contactRecord{
			ID:           contact.ID,
			Name:         contact.Name,
			Avatar:       contact.Avatar,
			Status:       contact.Status,
			CustomStatus: contact.CustomStatus,
		},
		MyAvatar:   chat.MyAvatar,
		Messages:   make([]messageRecord, 0, len(chat.Messages)),
		ExportDate: exportDate,
	}
	for _, msg := range chat.Messages {
		dump.Messages = append(dump.Messages, toRecord(msg))
	}

	data, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling chat: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

func toRecord(msg domain.Message) messageRecord {
	rec := messageRecord{
		ID:        msg.ID,
		Text:      msg.Text,
		Sender:    msg.Sender.String(),
		Timestamp: msg.Timestamp,
		Type:      string(msg.Kind()),
		Status:    msg.Status.String(),
	}

	switch content := msg.Content.(type) {
	case domain.ImageContent:
		rec.ImageURL = content.URL
	case domain.FileContent:
		rec.FileName = content.Name
		rec.FileSize = content.Size
	case domain.VoiceCallContent:
		rec.SubTitle = content.SubTitle
		rec.Minutes = content.Minutes
		rec.Seconds = content.Seconds
	case domain.VoiceNoteContent:
		rec.Duration = content.Duration
		rec.Waveform = content.Waveform
		rec.Amplitude = content.Amplitude
		rec.Frequency = content.Frequency
	}
	return rec
}

// ExportFilename builds the default download name for an export.
func ExportFilename(contactName string, date time.Time) string {
	return fmt.Sprintf("whatsapp-chat-%s-%s.json", contactName, date.Format("2006-01-02"))
}
