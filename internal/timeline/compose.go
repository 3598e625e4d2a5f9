package timeline

import (
	"sort"
	"time"

	"github.com/Annamarie223sd/WhatsAppTest/internal/domain"
)

// Item is one element of the composed render sequence: a DateDivider or an
// Entry.
type Item interface {
	isItem()
}

// DateDivider separates messages of different calendar days.
type DateDivider struct {
	Date  time.Time
	Label string
}

// Entry is a message annotated with its grouping flag. ShowTail marks the
// start of a new run of consecutive same-sender, same-day messages and
// controls the bubble tail decoration.
type Entry struct {
	Message  domain.Message
	ShowTail bool
}

func (DateDivider) isItem() {}
func (Entry) isItem()       {}

// Compose turns an unordered message collection into the ordered render
// sequence. Messages are stable-sorted by timestamp (insertion order breaks
// ties), a divider is emitted at every calendar-day change, and the first
// message of each same-sender same-day run gets ShowTail. The input is not
// mutated; now only affects divider labels, never ordering.
func Compose(msgs []domain.Message, now time.Time) []Item {
	if len(msgs) == 0 {
		return nil
	}

	sorted := make([]domain.Message, len(msgs))
	copy(sorted, msgs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	items := make([]Item, 0, len(sorted)+1)
	lastKey := ""
	for i, msg := range sorted {
		key := dateKey(msg.Timestamp)
		if key != lastKey {
			items = append(items, DateDivider{
				Date:  msg.Timestamp,
				Label: DividerLabel(msg.Timestamp, now),
			})
			lastKey = key
		}

		tail := i == 0
		if !tail {
			prev := sorted[i-1]
			tail = dateKey(prev.Timestamp) != key || prev.Sender != msg.Sender
		}

		items = append(items, Entry{Message: msg, ShowTail: tail})
	}
	return items
}

// Entries filters a render sequence down to its message entries.
func Entries(items []Item) []Entry {
	var entries []Entry
	for _, item := range items {
		if e, ok := item.(Entry); ok {
			entries = append(entries, e)
		}
	}
	return entries
}

// dateKey is the calendar-day identity of t in local time.
func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
