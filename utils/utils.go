package utils

import (
	"crypto/sha1"
	"fmt"
	"strings"

	"github.com/minigit-vcs/minigit/internal/constants"
)

type ObjectType string

const (
	BlobObjectType   ObjectType = "blob"
	CommitObjectType ObjectType = "commit"
)

func (ot ObjectType) IsValid() bool {
	switch ot {
	case BlobObjectType, CommitObjectType:
		return true
	default:
		return false
	}
}

// ComputeHash calculates the SHA-1 hash for object content.
// The object type and content length are mixed into the digest so a blob
// and a commit with identical payloads never collide.
func ComputeHash(content []byte, objectType ObjectType) (string, error) {
	if !objectType.IsValid() {
		return "", fmt.Errorf("invalid object type: %s - hash not computed", objectType)
	}

	// format: "ObjectType <size>\0<content>"
	header := fmt.Sprintf("%v %d\x00", objectType, len(content))
	data := append([]byte(header), content...)
	hash := sha1.Sum(data)
	return fmt.Sprintf("%x", hash), nil
}

// ShortHash abbreviates a hash for user-facing output. Hashes shorter than
// the abbreviation length are returned unchanged.
func ShortHash(hash string) string {
	if len(hash) <= constants.ShortHashLength {
		return hash
	}
	return hash[:constants.ShortHashLength]
}

// SplitLines splits content on newlines, dropping the empty segment a
// trailing newline would otherwise produce. "a\nb\n" and "a\nb" both yield
// ["a", "b"]; empty content yields no lines.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
