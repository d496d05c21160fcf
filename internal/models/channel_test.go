package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChannelValid(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"http://example.com/live", true},
		{"https://example.com/live.m3u8", true},
		{"rtmp://example.com/live", true},
		{"rtsp://example.com/live", true},
		{"", false},
		{"ftp://x", false},
		{"udp://239.0.0.1:1234", false},
		{"HTTPS://example.com", false},
		{" http://example.com", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Channel{URL: tt.url}.Valid(), tt.url)
	}
}
