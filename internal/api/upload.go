package api

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// MaxLogos is the most logos a sponsor may carry.
const MaxLogos = 5

// imageExtensions mirrors the file types the backend accepts for images.
var imageExtensions = map[string]string{
	".png":  "image/png",
	".gif":  "image/gif",
	".jpeg": "image/jpeg",
	".jpg":  "image/jpeg",
	".svg":  "image/svg+xml",
}

// ImageExtensions returns the accepted upload extensions.
func ImageExtensions() []string {
	return []string{".png", ".gif", ".jpeg", ".jpg", ".svg"}
}

// Upload is a file attached to a multipart request.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// LoadUpload reads an image file from disk.
func LoadUpload(path string) (Upload, error) {
	ext := strings.ToLower(filepath.Ext(path))
	contentType, ok := imageExtensions[ext]
	if !ok {
		return Upload{}, Invalid("file", fmt.Sprintf("Unsupported image type %q.", ext))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Upload{}, fmt.Errorf("read upload: %w", err)
	}
	return Upload{
		Filename:    filepath.Base(path),
		ContentType: contentType,
		Data:        data,
	}, nil
}

func (u Upload) contentType() string {
	if u.ContentType != "" {
		return u.ContentType
	}
	if ct := mime.TypeByExtension(filepath.Ext(u.Filename)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
