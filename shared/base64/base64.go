// Package base64 reads data URLs of the form "data:<mime>;base64,<payload>".
package base64

import (
	stdbase64 "encoding/base64"
	"errors"
	"fmt"
	"strings"
)

const (
	dataPrefix   = "data:"
	base64Marker = ";base64,"
)

var ErrInvalidDataURL = errors.New("invalid data url")

// GetContentType returns the mime type declared by a data URL, or "" when there is none.
func GetContentType(file string) string {
	if !strings.HasPrefix(file, dataPrefix) {
		return ""
	}

	end := strings.Index(file, base64Marker)
	if end < len(dataPrefix) {
		return ""
	}

	return file[len(dataPrefix):end]
}

// DecodedSize estimates the payload size in bytes without decoding it.
func DecodedSize(file string) int {
	idx := strings.Index(file, base64Marker)
	if idx == -1 {
		return len(file)
	}

	payload := strings.TrimRight(file[idx+len(base64Marker):], "=")

	return len(payload) * 3 / 4
}

// Decode splits a data URL into its mime type and raw bytes.
func Decode(file string) (string, []byte, error) {
	contentType := GetContentType(file)
	if contentType == "" {
		return "", nil, ErrInvalidDataURL
	}

	payload := file[strings.Index(file, base64Marker)+len(base64Marker):]

	data, err := stdbase64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decode data url payload: %w", err)
	}

	return contentType, data, nil
}
