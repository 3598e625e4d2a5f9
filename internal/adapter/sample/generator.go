// Package sample fabricates demo conversations.
package sample

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/Annamarie223sd/WhatsAppTest/internal/domain"
)

var randomTexts = [...]string{
	"你好！",
	"今天天气怎么样？",
	"在忙什么呢？",
	"晚上一起吃饭吗？",
	"这个项目进展如何？",
	"周末有什么计划？",
	"最近工作还顺利吗？",
	"记得按时吃饭哦！",
	"明天见！",
	"谢谢你的帮助！",
}

// Conversation returns the five-message demo chat: alternating senders over
// the hour before now, with read and delivered receipts on the self-sent
// messages.
func Conversation(now time.Time) *domain.Chat {
	chat := &domain.Chat{}

	entries := []struct {
		text   string
		sender domain.Sender
		offset time.Duration
		status domain.Status
	}{
		{"你好！", domain.Other, -3600 * time.Second, domain.StatusUnset},
		{"你好！最近怎么样？", domain.Me, -3500 * time.Second, domain.StatusRead},
		{"还不错，工作比较忙", domain.Other, -3400 * time.Second, domain.StatusUnset},
		{"注意身体，别太累了", domain.Me, -3300 * time.Second, domain.StatusDelivered},
		{"谢谢关心！", domain.Other, -3200 * time.Second, domain.StatusUnset},
	}
	for i, e := range entries {
		chat.Append(domain.Message{
			ID:        strconv.Itoa(i + 1),
			Sender:    e.sender,
			Timestamp: now.Add(e.offset),
			Status:    e.status,
			Text:      e.text,
			Content:   domain.TextContent{},
		})
	}
	return chat
}

// RandomMessage returns one canned text message with a random sender.
// Self-sent messages default to read.
func RandomMessage(now time.Time) domain.Message {
	sender := domain.Other
	status := domain.StatusUnset
	if rand.Float64() > 0.5 {
		sender = domain.Me
		status = domain.StatusRead
	}
	return domain.Message{
		ID:        uuid.NewString(),
		Sender:    sender,
		Timestamp: now,
		Status:    status,
		Text:      randomTexts[rand.Intn(len(randomTexts))],
		Content:   domain.TextContent{},
	}
}
