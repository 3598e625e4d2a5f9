package renderer

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/Annamarie223sd/WhatsAppTest/internal/domain"
	"github.com/Annamarie223sd/WhatsAppTest/internal/timeline"
)

// DefaultWidth is the terminal width bubbles are laid out in when the
// caller does not override it.
const DefaultWidth = 72

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#111b21")).
			Background(lipgloss.Color("#f0f2f5")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Faint(true).
			Padding(0, 1)

	dividerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Padding(0, 1)

	sentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#111b21")).
			Background(lipgloss.Color("#d9fdd3")).
			Padding(0, 1)

	receivedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#111b21")).
			Background(lipgloss.Color("#ffffff")).
			Padding(0, 1)

	metaStyle = lipgloss.NewStyle().Faint(true)

	readStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#53bdeb"))
)

// ANSIRenderer draws the timeline as styled chat bubbles for the terminal.
type ANSIRenderer struct {
	Width int
}

func (r *ANSIRenderer) Render(w io.Writer, contact domain.Contact, items []timeline.Item) error {
	width := r.Width
	if width <= 0 {
		width = DefaultWidth
	}

	if contact.Name != "" {
		header := headerStyle.Render(contact.Name) + "\n" + statusStyle.Render(contact.StatusLine())
		if _, err := fmt.Fprintln(w, header); err != nil {
			return err
		}
	}

	for _, item := range items {
		switch it := item.(type) {
		case timeline.DateDivider:
			line := lipgloss.PlaceHorizontal(width, lipgloss.Center, dividerStyle.Render(it.Label))
			if _, err := fmt.Fprintf(w, "\n%s\n", line); err != nil {
				return err
			}
		case timeline.Entry:
			if it.ShowTail {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(w, r.renderEntry(contact, it, width)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *ANSIRenderer) renderEntry(contact domain.Contact, e timeline.Entry, width int) string {
	msg := e.Message

	body := (&TextRenderer{}).formatBody(msg)
	meta := metaStyle.Render(timeline.FormatClock(msg.Timestamp))
	if receipt, ok := timeline.ProjectReceipt(msg); ok {
		meta += " " + ansiReceipt(receipt)
	}

	bubble := body + "  " + meta
	if msg.Sender == domain.Me {
		return lipgloss.PlaceHorizontal(width, lipgloss.Right, sentStyle.Render(bubble))
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Left, receivedStyle.Render(bubble))
}

func ansiReceipt(receipt timeline.Receipt) string {
	switch receipt {
	case timeline.ReceiptSent:
		return metaStyle.Render("✓")
	case timeline.ReceiptDelivered:
		return metaStyle.Render("✓✓")
	default:
		return readStyle.Render("✓✓")
	}
}
