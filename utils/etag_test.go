package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateETagStable(t *testing.T) {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, GenerateETag(5, at), GenerateETag(5, at))
	assert.NotEqual(t, GenerateETag(5, at), GenerateETag(6, at))
	assert.NotEqual(t, GenerateETag(5, at), GenerateETag(5, at.Add(time.Second)))
}
