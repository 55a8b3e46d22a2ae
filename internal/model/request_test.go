package model

import (
	"errors"
	"testing"
)

func TestDownloadRequest_Validate(t *testing.T) {
	tests := []struct {
		name     string
		req      DownloadRequest
		expected error
	}{
		{
			name:     "valid request",
			req:      DownloadRequest{URL: "https://example.com/video", FormatID: "22", DestDir: "/tmp"},
			expected: nil,
		},
		{
			name:     "missing URL",
			req:      DownloadRequest{FormatID: "22", DestDir: "/tmp"},
			expected: ErrNoURL,
		},
		{
			name:     "missing format",
			req:      DownloadRequest{URL: "https://example.com/video", DestDir: "/tmp"},
			expected: ErrNoFormat,
		},
		{
			name:     "missing destination",
			req:      DownloadRequest{URL: "https://example.com/video", FormatID: "22"},
			expected: ErrNoDestination,
		},
		{
			name:     "whitespace only destination",
			req:      DownloadRequest{URL: "https://example.com/video", FormatID: "22", DestDir: "   "},
			expected: ErrNoDestination,
		},
	}

	for _, test := range tests {
		err := test.req.Validate()
		if !errors.Is(err, test.expected) {
			t.Errorf("%s: Validate() = %v, expected %v", test.name, err, test.expected)
		}
	}
}
