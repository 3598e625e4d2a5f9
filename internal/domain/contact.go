package domain

// DefaultCustomStatus is the placeholder shown under the contact name when
// no custom status is configured.
const DefaultCustomStatus = "点击此处以查看联系人信息"

// Contact is the conversation peer. Avatar is a URI or data URI.
type Contact struct {
	ID           string
	Name         string
	Avatar       string
	Status       string
	CustomStatus string
}

// StatusLine returns the text shown under the contact name in the header.
func (c Contact) StatusLine() string {
	if c.CustomStatus != "" {
		return c.CustomStatus
	}
	return DefaultCustomStatus
}
