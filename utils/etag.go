package utils

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"time"
)

// GenerateETag derives a weak ETag from an entity id and its last update time.
func GenerateETag(id interface{}, updatedAt time.Time) string {
	sum := sha1.Sum([]byte(fmt.Sprintf("%v-%d", id, updatedAt.UnixNano())))
	return `W/"` + hex.EncodeToString(sum[:8]) + `"`
}
