package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/Annamarie223sd/WhatsAppTest/internal/domain"
	"github.com/Annamarie223sd/WhatsAppTest/internal/timeline"
)

// Bar glyphs for waveform samples, lowest to highest amplitude.
var waveformBars = []rune("▁▂▃▄▅▆▇█")

// TextRenderer renders a composed timeline as plain text or markdown.
type TextRenderer struct {
	Markdown bool
}

func (r *TextRenderer) Render(w io.Writer, contact domain.Contact, items []timeline.Item) error {
	if contact.Name != "" {
		if err := r.writeHeader(w, contact); err != nil {
			return err
		}
	}

	first := true
	for _, item := range items {
		switch it := item.(type) {
		case timeline.DateDivider:
			if _, err := fmt.Fprintln(w, r.formatDivider(it)); err != nil {
				return err
			}
		case timeline.Entry:
			if it.ShowTail && !first {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(w, r.formatEntry(contact, it)); err != nil {
				return err
			}
			first = false
		}
	}
	return nil
}

func (r *TextRenderer) writeHeader(w io.Writer, contact domain.Contact) error {
	if r.Markdown {
		_, err := fmt.Fprintf(w, "# %s\n\n*%s*\n\n", contact.Name, contact.StatusLine())
		return err
	}
	_, err := fmt.Fprintf(w, "%s — %s\n\n", contact.Name, contact.StatusLine())
	return err
}

func (r *TextRenderer) formatDivider(d timeline.DateDivider) string {
	if r.Markdown {
		return fmt.Sprintf("\n**—— %s ——**\n", d.Label)
	}
	return fmt.Sprintf("—— %s ——", d.Label)
}

func (r *TextRenderer) formatEntry(contact domain.Contact, e timeline.Entry) string {
	msg := e.Message

	name := contact.Name
	if name == "" {
		name = "对方"
	}
	if msg.Sender == domain.Me {
		name = "我"
	}

	line := fmt.Sprintf("[%s] %s: %s", timeline.FormatClock(msg.Timestamp), name, r.formatBody(msg))
	if receipt, ok := timeline.ProjectReceipt(msg); ok {
		line += " " + receiptGlyph(receipt)
	}
	return line
}

func (r *TextRenderer) formatBody(msg domain.Message) string {
	switch content := msg.Content.(type) {
	case domain.ImageContent:
		ref := msg.Text
		if ref == "" {
			ref = content.URL
		}
		return fmt.Sprintf("[图片] %s", ref)

	case domain.FileContent:
		if content.Size != "" {
			return fmt.Sprintf("[文件] %s (%s)", content.Name, content.Size)
		}
		return fmt.Sprintf("[文件] %s", content.Name)

	case domain.VoiceCallContent:
		title := msg.Text
		if title == "" {
			title = "语音通话"
		}
		return fmt.Sprintf("[语音通话] %s · %s", title, timeline.CallLabel(content))

	case domain.VoiceNoteContent:
		return fmt.Sprintf("[语音] %s %s", WaveformBars(content.Waveform), timeline.FormatDuration(content.Duration))

	default:
		return msg.Text
	}
}

// WaveformBars renders amplitude samples as block glyphs. An empty waveform
// collapses to a small dot and a single sample to a large one, mirroring
// the canvas fallbacks of the on-screen renderer.
func WaveformBars(samples []float64) string {
	switch len(samples) {
	case 0:
		return "·"
	case 1:
		return "●"
	}

	var b strings.Builder
	for _, v := range samples {
		idx := int(v * float64(len(waveformBars)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(waveformBars) {
			idx = len(waveformBars) - 1
		}
		b.WriteRune(waveformBars[idx])
	}
	return b.String()
}

func receiptGlyph(receipt timeline.Receipt) string {
	switch receipt {
	case timeline.ReceiptSent:
		return "✓"
	case timeline.ReceiptDelivered:
		return "✓✓"
	default:
		return "✔✔"
	}
}
