package llm

import (
	"encoding/base64"
)

// Conversation roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Content block types.
const (
	BlockText  = "text"
	BlockImage = "image"
)

// Message represents one conversation entry.
type Message struct {
	Role    string         `json:"role"`
	Content []ContentBlock `json:"content"`
}

// ContentBlock is one unit of message content, either text or an image.
type ContentBlock struct {
	Type string `json:"type"`

	// Text payload (type: "text").
	Text string `json:"text,omitempty"`

	// Image payload (type: "image").
	Source *ImageSource `json:"source,omitempty"`
}

// ImageSource holds image data either inline or by reference.
type ImageSource struct {
	Type      string `json:"type"`       // "base64" | "url"
	MediaType string `json:"media_type"` // "image/jpeg", "image/png", etc.
	Data      []byte `json:"-"`
	URL       string `json:"url,omitempty"`
}

// MarshalJSON encodes inline image bytes as base64.
func (is *ImageSource) MarshalJSON() ([]byte, error) {
	if is.Type == "base64" && len(is.Data) > 0 {
		return []byte(`{"type":"base64","media_type":"` + is.MediaType + `","data":"` + base64.StdEncoding.EncodeToString(is.Data) + `"}`), nil
	}
	return []byte(`{"type":"` + is.Type + `","media_type":"` + is.MediaType + `","url":"` + is.URL + `"}`), nil
}

// UnmarshalJSON decodes the base64 data field back into raw bytes.
func (is *ImageSource) UnmarshalJSON(data []byte) error {
	type alias ImageSource
	aux := &struct {
		DataBase64 string `json:"data"`
		*alias
	}{
		alias: (*alias)(is),
	}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if aux.DataBase64 != "" {
		decoded, err := base64.StdEncoding.DecodeString(aux.DataBase64)
		if err != nil {
			return err
		}
		is.Data = decoded
	}

	return nil
}

// NewTextMessage builds a single text-block message.
func NewTextMessage(role, text string) Message {
	return Message{
		Role:    role,
		Content: []ContentBlock{{Type: BlockText, Text: text}},
	}
}

// NewSystemMessage builds a system instruction message.
func NewSystemMessage(text string) Message {
	return NewTextMessage(RoleSystem, text)
}

// NewUserMessage builds a user message.
func NewUserMessage(text string) Message {
	return NewTextMessage(RoleUser, text)
}

// NewAssistantMessage builds an assistant message.
func NewAssistantMessage(text string) Message {
	return NewTextMessage(RoleAssistant, text)
}

// NewToolMessage builds a tool-result message.
func NewToolMessage(text string) Message {
	return NewTextMessage(RoleTool, text)
}

// Text concatenates all text blocks of the message.
func (m *Message) Text() string {
	var result string
	for _, block := range m.Content {
		if block.Type == BlockText {
			result += block.Text
		}
	}
	return result
}

// HasImages reports whether the message carries any image block.
func (m *Message) HasImages() bool {
	for _, block := range m.Content {
		if block.Type == BlockImage {
			return true
		}
	}
	return false
}

// NewTextBlock builds a text content block.
func NewTextBlock(text string) ContentBlock {
	return ContentBlock{Type: BlockText, Text: text}
}

// NewImageBlock builds an inline (base64) image block.
func NewImageBlock(data []byte, mimeType string) ContentBlock {
	return ContentBlock{
		Type: BlockImage,
		Source: &ImageSource{
			Type:      "base64",
			MediaType: mimeType,
			Data:      data,
		},
	}
}

// NewImageBlockFromURL builds an image block referencing a remote URL.
func NewImageBlockFromURL(url, mimeType string) ContentBlock {
	return ContentBlock{
		Type: BlockImage,
		Source: &ImageSource{
			Type:      "url",
			MediaType: mimeType,
			URL:       url,
		},
	}
}
