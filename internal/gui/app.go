// Package gui implements the desktop window: an IPA entry, the converted
// Cyrillic output and the recent conversion history.
package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"github.com/miralushch/ipa2ru/internal"
	"github.com/miralushch/ipa2ru/internal/history"
	"github.com/miralushch/ipa2ru/internal/ru"
)

// Config holds GUI application configuration
type Config struct {
	// History is optional; without it the window simply does not show
	// earlier conversions.
	History *history.Store
}

// Application represents the main GUI application
type Application struct {
	// Fyne components
	app    fyne.App
	window fyne.Window

	// UI elements
	ipaInput      *widget.Entry
	convertButton *ttwidget.Button
	outputLabel   *widget.Label
	statusLabel   *widget.Label
	historyList   *widget.List

	// State
	config  *Config
	entries []history.Entry
}

// New creates a new GUI application
func New(config *Config) *Application {
	if config == nil {
		config = &Config{}
	}

	a := &Application{
		app:    app.New(),
		config: config,
	}

	a.window = a.app.NewWindow(fmt.Sprintf("ipa2ru v%s - IPA to Cyrillic", internal.Version))
	a.buildUI()
	a.refreshHistory()

	return a
}

// Run shows the window and enters the event loop
func (a *Application) Run() error {
	a.window.Resize(fyne.NewSize(520, 400))
	a.window.ShowAndRun()
	return nil
}

func (a *Application) buildUI() {
	a.ipaInput = widget.NewEntry()
	a.ipaInput.SetPlaceHolder("Enter IPA text, e.g. nʲæ")
	a.ipaInput.OnSubmitted = func(string) { a.convert() }

	a.convertButton = ttwidget.NewButton("Convert", a.convert)
	a.convertButton.SetToolTip("Transliterate the IPA text into Russian Cyrillic")

	a.outputLabel = widget.NewLabel("")
	a.outputLabel.TextStyle = fyne.TextStyle{Bold: true}

	a.statusLabel = widget.NewLabel("")
	a.statusLabel.Wrapping = fyne.TextWrapWord

	a.historyList = widget.NewList(
		func() int { return len(a.entries) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(i widget.ListItemID, o fyne.CanvasObject) {
			e := a.entries[i]
			o.(*widget.Label).SetText(fmt.Sprintf("%s → %s", e.IPA, e.Cyrillic))
		},
	)

	top := container.NewVBox(
		a.ipaInput,
		a.convertButton,
		a.outputLabel,
		a.statusLabel,
		widget.NewSeparator(),
		widget.NewLabel("Recent conversions:"),
	)

	content := container.NewBorder(top, nil, nil, nil, a.historyList)
	a.window.SetContent(fynetooltip.AddWindowToolTipLayer(content, a.window.Canvas()))
}

func (a *Application) convert() {
	ipaText := a.ipaInput.Text
	if ipaText == "" {
		return
	}

	cyrillic, err := ru.Transliterate(ipaText)
	if err != nil {
		a.outputLabel.SetText("")
		a.statusLabel.SetText(fmt.Sprintf("Error: %v", err))
		return
	}

	a.outputLabel.SetText(cyrillic)
	a.statusLabel.SetText("")

	if a.config.History != nil {
		if err := a.config.History.Record(ipaText, cyrillic); err != nil {
			a.statusLabel.SetText(fmt.Sprintf("Warning: history not recorded: %v", err))
		}
		a.refreshHistory()
	}
}

func (a *Application) refreshHistory() {
	if a.config.History == nil {
		return
	}

	entries, err := a.config.History.Recent(10)
	if err != nil {
		a.statusLabel.SetText(fmt.Sprintf("Warning: history unavailable: %v", err))
		return
	}

	a.entries = entries
	if a.historyList != nil {
		a.historyList.Refresh()
	}
}
