// Package archive moves finished conversion directories aside so a fresh
// run starts with an empty output directory.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ArchiveConversions moves the conversions directory to an archive with timestamp
func ArchiveConversions(conversionsDir string) error {
	// Check if conversions directory exists
	if _, err := os.Stat(conversionsDir); os.IsNotExist(err) {
		return fmt.Errorf("conversions directory does not exist: %s", conversionsDir)
	}

	// Get parent directory and create archive path
	parentDir := filepath.Dir(conversionsDir)
	archiveDir := filepath.Join(parentDir, "archive")

	// Create archive directory if it doesn't exist
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}

	// Generate timestamp
	timestamp := time.Now().Format("20060102-150405")
	archiveName := fmt.Sprintf("conversions-%s", timestamp)
	archivePath := filepath.Join(archiveDir, archiveName)

	// Check if archive already exists (unlikely but possible)
	if _, err := os.Stat(archivePath); err == nil {
		// Add microseconds to make it unique
		timestamp = time.Now().Format("20060102-150405.000000")
		archiveName = fmt.Sprintf("conversions-%s", timestamp)
		archivePath = filepath.Join(archiveDir, archiveName)
	}

	// Rename conversions directory to archive
	if err := os.Rename(conversionsDir, archivePath); err != nil {
		return fmt.Errorf("failed to archive conversions directory: %w", err)
	}

	fmt.Printf("Conversions directory archived to: %s\n", archivePath)
	return nil
}
