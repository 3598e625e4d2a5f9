package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Annamarie223sd/WhatsAppTest/internal/adapter/exporter"
	"github.com/Annamarie223sd/WhatsAppTest/internal/adapter/renderer"
	"github.com/Annamarie223sd/WhatsAppTest/internal/adapter/sample"
	"github.com/Annamarie223sd/WhatsAppTest/internal/adapter/script"
	"github.com/Annamarie223sd/WhatsAppTest/internal/domain"
)

func newTestService() *ChatService {
	log := zerolog.Nop()
	return NewChatService(script.NewParser(log), &renderer.TextRenderer{}, exporter.JSONExporter{}, log)
}

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const demoScript = `{
	"contact": {"name": "小明"},
	"messages": [
		{"id": "1", "sender": "other", "timestamp": "2024-03-09T21:00:00+08:00", "text": "你好！"},
		{"id": "2", "sender": "me", "timestamp": "2024-03-10T09:00:00+08:00", "text": "hello", "status": "read"}
	]
}`

func TestChatService_Process(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	path := writeScript(t, demoScript)

	var buf bytes.Buffer
	require.NoError(t, svc.Process(path, nil, nil, &buf))

	out := buf.String()
	assert.Contains(t, out, "小明")
	assert.Contains(t, out, "你好！")
	assert.Contains(t, out, "hello")
}

func TestChatService_ProcessAppliesTimeFilter(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	path := writeScript(t, demoScript)

	from := time.Date(2024, 3, 10, 0, 0, 0, 0, time.FixedZone("CST", 8*3600))

	var buf bytes.Buffer
	require.NoError(t, svc.Process(path, &from, nil, &buf))

	assert.NotContains(t, buf.String(), "你好！")
	assert.Contains(t, buf.String(), "hello")
}

func TestChatService_ProcessMergesDefaultContact(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	svc.DefaultContact = domain.Contact{Name: "默认联系人"}
	path := writeScript(t, `{"messages": [{"id": "1", "sender": "other", "text": "hi"}]}`)

	var buf bytes.Buffer
	require.NoError(t, svc.Process(path, nil, nil, &buf))
	assert.Contains(t, buf.String(), "默认联系人")
}

func TestChatService_EditText(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	path := writeScript(t, demoScript)

	changed, err := svc.EditText(path, "2", "hi there")
	require.NoError(t, err)
	assert.True(t, changed)

	// The rewritten file reflects the edit.
	var buf bytes.Buffer
	require.NoError(t, svc.Process(path, nil, nil, &buf))
	assert.Contains(t, buf.String(), "hi there")
	assert.NotContains(t, buf.String(), "] 我: hello")

	t.Run("missing id is a no-op", func(t *testing.T) {
		changed, err := svc.EditText(path, "99", "whatever")
		require.NoError(t, err)
		assert.False(t, changed)
	})
}

func TestChatService_Clear(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	path := writeScript(t, demoScript)

	require.NoError(t, svc.Clear(path))

	_, chat, err := script.NewParser(zerolog.Nop()).Parse(path)
	require.NoError(t, err)
	assert.Empty(t, chat.Messages)
}

func TestChatService_Export(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	path := writeScript(t, demoScript)

	var buf bytes.Buffer
	require.NoError(t, svc.Export(path, &buf))

	assert.Contains(t, buf.String(), `"exportDate"`)
	assert.Contains(t, buf.String(), `"小明"`)
}

func TestChatService_ExportFillsMyAvatarFromConfig(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	svc.MyAvatar = "data:image/png;base64,bWU="
	path := writeScript(t, demoScript)

	var buf bytes.Buffer
	require.NoError(t, svc.Export(path, &buf))
	assert.Contains(t, buf.String(), `"myAvatar": "data:image/png;base64,bWU="`)

	t.Run("script value wins", func(t *testing.T) {
		path := writeScript(t, `{"myAvatar": "data:image/png;base64,c2NyaXB0", "messages": []}`)

		var buf bytes.Buffer
		require.NoError(t, svc.Export(path, &buf))
		assert.Contains(t, buf.String(), "c2NyaXB0")
		assert.NotContains(t, buf.String(), "bWU=")
	})
}

func TestChatService_Contact(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	svc.DefaultContact = domain.Contact{Name: "默认联系人", Status: "online"}

	t.Run("script name wins over the default", func(t *testing.T) {
		path := writeScript(t, demoScript)

		contact, err := svc.Contact(path)
		require.NoError(t, err)
		assert.Equal(t, "小明", contact.Name)
		assert.Equal(t, "online", contact.Status, "missing fields filled from the default")
	})

	t.Run("default fills a missing name", func(t *testing.T) {
		path := writeScript(t, `{"messages": []}`)

		contact, err := svc.Contact(path)
		require.NoError(t, err)
		assert.Equal(t, "默认联系人", contact.Name)
	})
}

func TestChatService_AppendMessages(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	path := writeScript(t, demoScript)

	msgs := []domain.Message{
		sample.RandomMessage(time.Now()),
		sample.RandomMessage(time.Now()),
	}
	require.NoError(t, svc.AppendMessages(path, msgs))

	// The rewritten file carries the appended messages at the end.
	_, chat, err := script.NewParser(zerolog.Nop()).Parse(path)
	require.NoError(t, err)
	require.Len(t, chat.Messages, 4)
	assert.Equal(t, msgs[0].ID, chat.Messages[2].ID)
	assert.Equal(t, msgs[1].ID, chat.Messages[3].ID)
	assert.NotEmpty(t, chat.Messages[3].Text)
}
