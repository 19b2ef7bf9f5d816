package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile      string
	OutputDir    string
	BatchFile    string
	Word         string
	ListModels   bool
	ShowHistory  bool
	HistoryLimit int
	NoHistory    bool
	Archive      bool

	// Transcription provider flags
	Provider    string
	OpenAIModel string
	GeminiModel string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		HistoryLimit: 20,
		Provider:     "openai",
		OpenAIModel:  "gpt-4o-mini",
		GeminiModel:  "gemini-2.0-flash",
	}
}
