// Package cache keeps analysis results keyed by document and content hash so
// that unchanged sources are not re-analyzed.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// FileHasher computes content hashes for cache keys
type FileHasher struct{}

// NewFileHasher creates a new file hasher
func NewFileHasher() *FileHasher {
	return &FileHasher{}
}

// HashContent computes a SHA-256 hash of the given content
func (fh *FileHasher) HashContent(content []byte) string {
	hasher := sha256.New()
	hasher.Write(content)
	return hex.EncodeToString(hasher.Sum(nil))
}

// HashString computes a SHA-256 hash of the given string
func (fh *FileHasher) HashString(content string) string {
	return fh.HashContent([]byte(content))
}
