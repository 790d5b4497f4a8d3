package models

import (
	"encoding/base64"
	"net/http"
	"strings"
)

// Role identifies the author of a chat turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// ChatMessage is one turn of a conversation.
type ChatMessage struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// Image is a generated image payload.
type Image struct {
	MIMEType string
	Data     []byte
}

// NewImage builds an Image, sniffing the MIME type when mimeType is empty.
func NewImage(mimeType string, data []byte) *Image {
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}
	return &Image{MIMEType: mimeType, Data: data}
}

// DataURL renders the image as a data: URL.
func (i *Image) DataURL() string {
	return "data:" + i.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(i.Data)
}

// Ext returns a file extension (with the dot) for the image's MIME type.
func (i *Image) Ext() string {
	switch strings.ToLower(i.MIMEType) {
	case "image/png":
		return ".png"
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".bin"
	}
}
