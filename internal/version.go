// Package internal holds the version string and small helpers shared by the
// ipa2ru packages.
package internal

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"
)

// Version is the application version reported by the CLI.
const Version = "0.3.0"

// GenerateEntryID creates a unique ID for a conversion history entry.
// Format: epochMillis_md5(input)[:8]
func GenerateEntryID(input string) string {
	epochMillis := time.Now().UnixNano() / 1000000

	hash := md5.Sum([]byte(input))
	hashStr := hex.EncodeToString(hash[:])[:8]

	return fmt.Sprintf("%d_%s", epochMillis, hashStr)
}

// SanitizeFilename creates a safe filename from a string
func SanitizeFilename(s string) string {
	result := ""
	for _, r := range s {
		if isAlphaNumeric(r) || r == '-' || r == '_' {
			result += string(r)
		} else {
			result += "_"
		}
	}
	return result
}

// isAlphaNumeric checks if a rune is alphanumeric. The Cyrillic ranges do
// not cover ё/Ё, which sit outside а-я/А-Я; they are accepted separately
// since converted output regularly contains them.
func isAlphaNumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') || (r >= 'а' && r <= 'я') ||
		(r >= 'А' && r <= 'Я') || r == 'ё' || r == 'Ё'
}
