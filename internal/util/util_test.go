package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate_ShortStringUnchanged(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", TruncateLimit))
}

func TestTruncate_ExactLimitUnchanged(t *testing.T) {
	body := strings.Repeat("a", 100)
	assert.Equal(t, body, Truncate(body, TruncateLimit))
}

func TestTruncate_OneOverLimitGetsEllipsis(t *testing.T) {
	body := strings.Repeat("a", 101)

	got := Truncate(body, TruncateLimit)

	assert.Equal(t, strings.Repeat("a", 100)+"...", got)
	assert.Len(t, got, 103)
}

func TestTruncate_CountsRunesNotBytes(t *testing.T) {
	body := strings.Repeat("ě", 100)
	assert.Equal(t, body, Truncate(body, TruncateLimit))
}
