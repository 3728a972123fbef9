package dnd

import (
	"errors"
	"testing"
)

func TestPayloadRoundTrip(t *testing.T) {
	t.Parallel()

	const path = "/usr/share/applications/org.example.App.desktop"

	got, err := DecodePath(EncodePath(path))
	if err != nil {
		t.Fatalf("DecodePath() error: %v", err)
	}
	if got != path {
		t.Errorf("round trip = %q, want %q", got, path)
	}
}

func TestEncodePathEscapesSpaces(t *testing.T) {
	t.Parallel()

	data := EncodePath("/home/u/My Apps/editor.desktop")
	if string(data) != "file:///home/u/My%20Apps/editor.desktop" {
		t.Errorf("EncodePath = %q", data)
	}

	got, err := DecodePath(data)
	if err != nil || got != "/home/u/My Apps/editor.desktop" {
		t.Errorf("DecodePath = %q, %v", got, err)
	}
}

func TestDecodePathFirstURIOnly(t *testing.T) {
	t.Parallel()

	data := []byte("file:///a.desktop\nfile:///b.desktop\n")
	got, err := DecodePath(data)
	if err != nil {
		t.Fatalf("DecodePath() error: %v", err)
	}
	if got != "/a.desktop" {
		t.Errorf("DecodePath = %q, want /a.desktop", got)
	}
}

func TestDecodePathErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"wrong scheme", "https://example.com/a"},
		{"no path", "file://"},
		{"garbage", "::not a uri::"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := DecodePath([]byte(tt.data)); !errors.Is(err, ErrBadPayload) {
				t.Errorf("DecodePath(%q) error = %v, want ErrBadPayload", tt.data, err)
			}
		})
	}
}
