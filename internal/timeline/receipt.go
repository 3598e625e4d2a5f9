package timeline

import "github.com/Annamarie223sd/WhatsAppTest/internal/domain"

// Receipt is the indicator variant drawn next to a self-sent message.
type Receipt int

const (
	ReceiptSent Receipt = iota
	ReceiptDelivered
	ReceiptRead
)

// ProjectReceipt maps a message to its receipt indicator. Incoming messages
// never carry one. A missing or unknown status falls back to read.
func ProjectReceipt(msg domain.Message) (Receipt, bool) {
	if msg.Sender != domain.Me {
		return 0, false
	}
	switch msg.Status {
	case domain.StatusSent:
		return ReceiptSent, true
	case domain.StatusDelivered:
		return ReceiptDelivered, true
	default:
		return ReceiptRead, true
	}
}
