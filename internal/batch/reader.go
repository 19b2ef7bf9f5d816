// Package batch reads conversion input files for bulk processing. Each line
// holds one IPA string, optionally prefixed by a label that names the source
// word ("кошка = koʃka"). Blank lines and # comments are skipped.
package batch

import (
	"fmt"
	"os"
	"strings"
)

// Entry represents one IPA string with an optional source-word label
type Entry struct {
	Label string
	IPA   string
}

// ReadBatchFile reads IPA strings from a file and returns Entry slice
// Supported formats:
// - IPA only: "nʲæ"
// - With label: "ня = nʲæ" (the label is echoed next to the conversion)
// - Comments: lines starting with '#' are ignored
func ReadBatchFile(filename string) ([]Entry, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var entries []Entry

	for _, line := range splitLines(string(content)) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Check if line contains '=' for the labeled format
		if strings.Contains(line, "=") {
			parts := strings.SplitN(line, "=", 2)
			label := strings.TrimSpace(parts[0])
			ipaText := strings.TrimSpace(parts[1])

			if ipaText == "" {
				// Ignore lines with an empty IPA part
				continue
			}
			entries = append(entries, Entry{
				Label: label,
				IPA:   ipaText,
			})
		} else {
			// Just an IPA string
			entries = append(entries, Entry{
				IPA: line,
			})
		}
	}

	return entries, nil
}

// splitLines splits a string by newlines, dropping carriage returns
func splitLines(s string) []string {
	var lines []string
	current := strings.Builder{}
	for _, r := range s {
		if r == '\n' {
			lines = append(lines, current.String())
			current.Reset()
		} else if r != '\r' {
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}
