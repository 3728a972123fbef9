package dnd

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrBadPayload is returned when drag data cannot be decoded back into a
// filesystem path.
var ErrBadPayload = errors.New("undecodable drag payload")

// EncodePath serializes a desktop entry's origin file as a text/uri-list
// payload: a single file:// URI.
func EncodePath(path string) []byte {
	u := url.URL{Scheme: "file", Path: path}

	return []byte(u.String())
}

// DecodePath parses a text/uri-list payload back into a filesystem path.
// Only the first URI is considered; entry drags carry exactly one.
func DecodePath(data []byte) (string, error) {
	raw := strings.TrimSpace(string(data))
	if line, _, ok := strings.Cut(raw, "\n"); ok {
		raw = strings.TrimSpace(line)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadPayload, err)
	}

	if u.Scheme != "file" || u.Path == "" {
		return "", fmt.Errorf("%w: %q", ErrBadPayload, raw)
	}

	return u.Path, nil
}
