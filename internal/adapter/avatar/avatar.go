// Package avatar converts uploaded image files into data URIs.
package avatar

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// DataURI reads an image file and returns it as a data URI for embedding in
// scripts and exports. Files whose detected MIME type is not image/* are
// rejected without any state change.
func DataURI(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading avatar: %w", err)
	}
	return Encode(data)
}

// Encode validates raw bytes and builds the data URI.
func Encode(data []byte) (string, error) {
	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", fmt.Errorf("not an image file (detected %s), please pick an image", mtype.String())
	}
	return "data:" + mtype.String() + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
