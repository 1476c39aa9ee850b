package objectstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveKey(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		prefix string
		want   string
	}{
		{"no prefix", "sessions/a.png", "", "sessions/a.png"},
		{"blank prefix", "sessions/a.png", "  / ", "sessions/a.png"},
		{"prefix applied", "a.png", "uploads", "uploads/a.png"},
		{"prefix with slashes", "a.png", "/uploads/", "uploads/a.png"},
		{"already prefixed", "uploads/a.png", "uploads", "uploads/a.png"},
		{"key equals prefix", "uploads", "uploads", "uploads"},
		{"leading slash stripped", "/sessions/a.png", "uploads", "uploads/sessions/a.png"},
		{"similar but distinct prefix", "uploads2/a.png", "uploads", "uploads/uploads2/a.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveKey(tt.key, tt.prefix))
		})
	}
}
