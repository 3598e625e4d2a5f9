package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/Annamarie223sd/WhatsAppTest/internal/domain"
	"github.com/Annamarie223sd/WhatsAppTest/internal/timeline"
)

// ApplicationName names the binary and its config directory.
const ApplicationName = "wamock"

// Renderer draws a contact header and a composed timeline.
type Renderer interface {
	Render(w io.Writer, contact domain.Contact, items []timeline.Item) error
}

// ChatService orchestrates the pipeline: parse script → filter → compose →
// render. All steps are synchronous, pure computations; only the I/O edges
// can fail.
type ChatService struct {
	parser   domain.ScriptParser
	renderer Renderer
	exporter domain.ChatExporter
	log      zerolog.Logger

	// DefaultContact fills contact fields the script leaves empty.
	DefaultContact domain.Contact
	// MyAvatar is the configured own-side avatar, used when the script
	// carries none.
	MyAvatar string
}

func NewChatService(parser domain.ScriptParser, renderer Renderer, exporter domain.ChatExporter, log zerolog.Logger) *ChatService {
	return &ChatService{
		parser:   parser,
		renderer: renderer,
		exporter: exporter,
		log:      log,
	}
}

// Process renders a chat script to w. from/to bound the rendered time range
// (nil means unbounded), applied before composition.
func (s *ChatService) Process(scriptPath string, from, to *time.Time, w io.Writer) error {
	contact, chat, err := s.parser.Parse(scriptPath)
	if err != nil {
		return fmt.Errorf("parsing script: %w", err)
	}
	contact = s.mergeContact(contact)

	if from != nil || to != nil {
		chat = chat.Filter(from, to)
	}

	items := timeline.Compose(chat.Messages, time.Now())
	return s.renderer.Render(w, contact, items)
}

// Export writes the full session dump to w. Like rendering, the dump sees
// the contact and own avatar merged with the configured defaults.
func (s *ChatService) Export(scriptPath string, w io.Writer) error {
	contact, chat, err := s.parser.Parse(scriptPath)
	if err != nil {
		return fmt.Errorf("parsing script: %w", err)
	}
	if chat.MyAvatar == "" {
		chat.MyAvatar = s.MyAvatar
	}
	return s.exporter.Export(w, s.mergeContact(contact), chat, time.Now())
}

// Contact returns the script's contact merged with the configured defaults,
// without rendering anything.
func (s *ChatService) Contact(scriptPath string) (domain.Contact, error) {
	contact, _, err := s.parser.Parse(scriptPath)
	if err != nil {
		return domain.Contact{}, fmt.Errorf("parsing script: %w", err)
	}
	return s.mergeContact(contact), nil
}

// AppendMessages adds messages to the end of a script file and rewrites it.
func (s *ChatService) AppendMessages(scriptPath string, msgs []domain.Message) error {
	contact, chat, err := s.parser.Parse(scriptPath)
	if err != nil {
		return fmt.Errorf("parsing script: %w", err)
	}
	for _, msg := range msgs {
		chat.Append(msg)
	}
	return s.rewrite(scriptPath, contact, chat)
}

// EditText replaces the text of one message in a script file and reports
// whether anything changed. Missing ids and empty or unchanged text leave
// the file untouched.
func (s *ChatService) EditText(scriptPath, id, text string) (bool, error) {
	contact, chat, err := s.parser.Parse(scriptPath)
	if err != nil {
		return false, fmt.Errorf("parsing script: %w", err)
	}
	if !chat.UpdateText(id, text) {
		s.log.Info().Str("id", id).Msg("no change applied")
		return false, nil
	}
	return true, s.rewrite(scriptPath, contact, chat)
}

// Clear rewrites a script file with an empty message log. The caller is
// responsible for confirming the destructive reset.
func (s *ChatService) Clear(scriptPath string) error {
	contact, chat, err := s.parser.Parse(scriptPath)
	if err != nil {
		return fmt.Errorf("parsing script: %w", err)
	}
	chat.Clear()
	return s.rewrite(scriptPath, contact, chat)
}

// WriteScript dumps a contact and chat as a fresh script file.
func (s *ChatService) WriteScript(path string, contact domain.Contact, chat *domain.Chat) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating script file: %w", err)
	}
	defer f.Close()
	return s.exporter.Export(f, contact, chat, time.Now())
}

func (s *ChatService) rewrite(path string, contact domain.Contact, chat *domain.Chat) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("rewriting script file: %w", err)
	}
	defer f.Close()
	return s.exporter.Export(f, contact, chat, time.Now())
}

func (s *ChatService) mergeContact(contact domain.Contact) domain.Contact {
	if contact.Name == "" {
		contact.Name = s.DefaultContact.Name
	}
	if contact.Avatar == "" {
		contact.Avatar = s.DefaultContact.Avatar
	}
	if contact.Status == "" {
		contact.Status = s.DefaultContact.Status
	}
	if contact.CustomStatus == "" {
		contact.CustomStatus = s.DefaultContact.CustomStatus
	}
	return contact
}
