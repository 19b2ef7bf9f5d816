package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/miralushch/ipa2ru/internal"
	"github.com/miralushch/ipa2ru/internal/batch"
	"github.com/miralushch/ipa2ru/internal/cli"
	"github.com/miralushch/ipa2ru/internal/gui"
	"github.com/miralushch/ipa2ru/internal/history"
	"github.com/miralushch/ipa2ru/internal/phonetic"
	"github.com/miralushch/ipa2ru/internal/ru"
)

// Processor handles the main conversion logic
type Processor struct {
	flags *cli.Flags
	store *history.Store
}

// NewProcessor creates a new conversion processor. The history store is
// opened lazily so a broken state directory degrades to warnings instead of
// blocking conversions.
func NewProcessor(flags *cli.Flags) *Processor {
	return &Processor{flags: flags}
}

// Close releases the history store if it was opened
func (p *Processor) Close() {
	if p.store != nil {
		p.store.Close()
		p.store = nil
	}
}

// ProcessSingleInput converts one IPA string from the command line
func (p *Processor) ProcessSingleInput(ipaText string) error {
	cyrillic, err := p.convert(ipaText)
	if err != nil {
		return err
	}

	fmt.Println(cyrillic)

	return p.saveConversion("", ipaText, cyrillic)
}

// ProcessWord fetches the IPA transcription for a word, then converts it
func (p *Processor) ProcessWord(word string) error {
	provider, err := p.transcriptionProvider()
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Fetching IPA transcription for '%s' via %s...\n", word, provider.Name())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	ipaText, err := provider.Transcribe(ctx, word)
	if err != nil {
		return fmt.Errorf("failed to fetch transcription for '%s': %w", word, err)
	}

	cyrillic, err := p.convert(ipaText)
	if err != nil {
		return fmt.Errorf("transcription '%s' did not convert: %w", ipaText, err)
	}

	fmt.Printf("%s → %s → %s\n", word, ipaText, cyrillic)

	return p.saveConversion(word, ipaText, cyrillic)
}

// ProcessBatch converts every IPA string in the batch file
func (p *Processor) ProcessBatch() error {
	entries, err := batch.ReadBatchFile(p.flags.BatchFile)
	if err != nil {
		return err
	}

	processedCount := 0
	errorCount := 0

	for i, entry := range entries {
		fmt.Fprintf(os.Stderr, "Processing %d/%d: %s\n", i+1, len(entries), entry.IPA)

		cyrillic, err := p.convert(entry.IPA)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error converting '%s': %v\n", entry.IPA, err)
			errorCount++
			// Continue with next entry
			continue
		}

		if entry.Label != "" {
			fmt.Printf("%s: %s\n", entry.Label, cyrillic)
		} else {
			fmt.Println(cyrillic)
		}

		if err := p.saveConversion(entry.Label, entry.IPA, cyrillic); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to save '%s': %v\n", entry.IPA, err)
		}
		processedCount++
	}

	// Print summary
	fmt.Fprintf(os.Stderr, "\n=== Batch Summary ===\n")
	fmt.Fprintf(os.Stderr, "Total entries: %d\n", len(entries))
	fmt.Fprintf(os.Stderr, "Converted: %d\n", processedCount)
	if errorCount > 0 {
		fmt.Fprintf(os.Stderr, "Errors: %d\n", errorCount)
	}
	fmt.Fprintf(os.Stderr, "=====================\n")

	return nil
}

// ShowHistory prints the most recent conversions
func (p *Processor) ShowHistory() error {
	store, err := p.historyStore()
	if err != nil {
		return err
	}

	entries, err := store.Recent(p.flags.HistoryLimit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No conversions recorded yet.")
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%s  %s → %s\n", e.CreatedAt.Format("2006-01-02 15:04:05"), e.IPA, e.Cyrillic)
	}

	return nil
}

// RunGUIMode launches the desktop window
func (p *Processor) RunGUIMode() error {
	var store *history.Store
	if !p.flags.NoHistory {
		var err error
		store, err = p.historyStore()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: history unavailable: %v\n", err)
		}
	}

	app := gui.New(&gui.Config{History: store})
	return app.Run()
}

// convert runs the core pipeline and records the result
func (p *Processor) convert(ipaText string) (string, error) {
	cyrillic, err := ru.Transliterate(ipaText)
	if err != nil {
		return "", err
	}

	if !p.flags.NoHistory {
		if store, err := p.historyStore(); err == nil {
			if err := store.Record(ipaText, cyrillic); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to record history: %v\n", err)
			}
		}
	}

	return cyrillic, nil
}

// saveConversion writes the conversion files when an output directory is set
func (p *Processor) saveConversion(label, ipaText, cyrillic string) error {
	if p.flags.OutputDir == "" {
		return nil
	}

	name := label
	if name == "" {
		name = cyrillic
	}
	dir := filepath.Join(p.flags.OutputDir, internal.SanitizeFilename(name))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "ipa.txt"), []byte(ipaText+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write ipa file: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "cyrillic.txt"), []byte(cyrillic+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write cyrillic file: %w", err)
	}

	return nil
}

func (p *Processor) historyStore() (*history.Store, error) {
	if p.store != nil {
		return p.store, nil
	}

	path, err := history.DefaultPath()
	if err != nil {
		return nil, err
	}

	store, err := history.Open(path)
	if err != nil {
		return nil, err
	}
	p.store = store
	return store, nil
}

func (p *Processor) transcriptionProvider() (phonetic.Provider, error) {
	config := &phonetic.Config{
		Provider:    p.flags.Provider,
		OpenAIKey:   cli.GetOpenAIKey(),
		OpenAIModel: p.flags.OpenAIModel,
		GeminiKey:   cli.GetGeminiKey(),
		GeminiModel: p.flags.GeminiModel,
	}

	provider, err := phonetic.NewProvider(config)
	if err != nil {
		return nil, err
	}

	// Repeated API failures should trip fast rather than stall batch runs.
	return phonetic.NewBreakerProvider(provider), nil
}
