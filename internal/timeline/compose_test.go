package timeline

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Annamarie223sd/WhatsAppTest/internal/domain"
)

func textMessage(id string, sender domain.Sender, ts time.Time) domain.Message {
	return domain.Message{
		ID:        id,
		Sender:    sender,
		Timestamp: ts,
		Text:      "msg " + id,
		Content:   domain.TextContent{},
	}
}

func TestCompose_Empty(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Compose(nil, time.Now()))
	assert.Nil(t, Compose([]domain.Message{}, time.Now()))
}

func TestCompose_SingleMessage(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 10, 15, 0, 0, 0, time.Local)
	items := Compose([]domain.Message{textMessage("1", domain.Me, now)}, now)

	require.Len(t, items, 2)
	divider, ok := items[0].(DateDivider)
	require.True(t, ok)
	assert.Equal(t, "今天", divider.Label)

	entry, ok := items[1].(Entry)
	require.True(t, ok)
	assert.True(t, entry.ShowTail)
}

func TestCompose_SortsByTimestampKeepingInput(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 3, 10, 9, 0, 0, 0, time.Local)
	msgs := []domain.Message{
		textMessage("3", domain.Me, base.Add(2*time.Minute)),
		textMessage("1", domain.Other, base),
		textMessage("2", domain.Me, base.Add(time.Minute)),
	}

	items := Compose(msgs, base)
	entries := Entries(items)

	require.Len(t, entries, len(msgs), "no drops or duplicates")
	for i := 1; i < len(entries); i++ {
		assert.False(t, entries[i].Message.Timestamp.Before(entries[i-1].Message.Timestamp))
	}
	assert.Equal(t, "1", entries[0].Message.ID)
	assert.Equal(t, "2", entries[1].Message.ID)
	assert.Equal(t, "3", entries[2].Message.ID)

	// Input order untouched
	assert.Equal(t, "3", msgs[0].ID)
}

func TestCompose_StableOnEqualTimestamps(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 3, 10, 9, 0, 0, 0, time.Local)
	var msgs []domain.Message
	for i := 0; i < 5; i++ {
		msgs = append(msgs, textMessage(strconv.Itoa(i), domain.Other, ts))
	}

	entries := Entries(Compose(msgs, ts))
	require.Len(t, entries, 5)
	for i, e := range entries {
		assert.Equal(t, strconv.Itoa(i), e.Message.ID, "insertion order breaks ties")
	}
}

func TestCompose_ShowTail(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 3, 10, 9, 0, 0, 0, time.Local)

	t.Run("same sender same day", func(t *testing.T) {
		entries := Entries(Compose([]domain.Message{
			textMessage("1", domain.Me, base),
			textMessage("2", domain.Me, base.Add(time.Minute)),
		}, base))

		require.Len(t, entries, 2)
		assert.True(t, entries[0].ShowTail)
		assert.False(t, entries[1].ShowTail)
	})

	t.Run("sender change", func(t *testing.T) {
		entries := Entries(Compose([]domain.Message{
			textMessage("1", domain.Me, base),
			textMessage("2", domain.Other, base.Add(time.Minute)),
		}, base))

		require.Len(t, entries, 2)
		assert.True(t, entries[1].ShowTail)
	})

	t.Run("day change same sender", func(t *testing.T) {
		entries := Entries(Compose([]domain.Message{
			textMessage("1", domain.Me, base),
			textMessage("2", domain.Me, base.AddDate(0, 0, 1)),
		}, base))

		require.Len(t, entries, 2)
		assert.True(t, entries[1].ShowTail)
	})
}

func TestCompose_DividerPerDayChange(t *testing.T) {
	t.Parallel()

	day1 := time.Date(2024, 3, 9, 22, 0, 0, 0, time.Local)
	day2 := time.Date(2024, 3, 10, 8, 0, 0, 0, time.Local)

	items := Compose([]domain.Message{
		textMessage("1", domain.Me, day1),
		textMessage("2", domain.Me, day1.Add(time.Minute)),
		textMessage("3", domain.Me, day2),
	}, day2)

	var dividers []DateDivider
	for _, item := range items {
		if d, ok := item.(DateDivider); ok {
			dividers = append(dividers, d)
		}
	}
	require.Len(t, dividers, 2, "one divider per calendar day")
	assert.Equal(t, "昨天", dividers[0].Label)
	assert.Equal(t, "今天", dividers[1].Label)

	// Divider sits directly before the first message of the new day
	_, ok := items[3].(DateDivider)
	assert.True(t, ok)
}

func TestCompose_FiveMessageScenario(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)
	yesterday := now.AddDate(0, 0, -1)

	msgs := []domain.Message{
		textMessage("1", domain.Other, yesterday),
		textMessage("2", domain.Me, yesterday.Add(time.Minute)),
		textMessage("3", domain.Other, now),
		textMessage("4", domain.Me, now.Add(time.Minute)),
		textMessage("5", domain.Me, now.Add(2*time.Minute)),
	}

	items := Compose(msgs, now)

	dividerCount := 0
	for _, item := range items {
		if _, ok := item.(DateDivider); ok {
			dividerCount++
		}
	}
	assert.Equal(t, 2, dividerCount)

	entries := Entries(items)
	require.Len(t, entries, 5)

	// Tails at divider-following messages and sender changes only.
	wantTails := []bool{true, true, true, true, false}
	for i, e := range entries {
		assert.Equal(t, wantTails[i], e.ShowTail, "entry %d", i)
	}
}
