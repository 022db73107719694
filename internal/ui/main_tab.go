package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/sakurazen/soxgui/internal/platform"
	"github.com/sakurazen/soxgui/internal/soxparam"
)

// createMainTab builds the file pickers, format selectors and action buttons
func (ui *RootUI) createMainTab() fyne.CanvasObject {
	ui.inputEntry = widget.NewEntry()
	ui.inputEntry.SetPlaceHolder(ui.localization.GetText(KeyInputFile))
	ui.inputEntry.OnSubmitted = func(path string) { ui.setInputFile(path) }

	ui.outputEntry = widget.NewEntry()
	ui.outputEntry.SetPlaceHolder(ui.localization.GetText(KeyOutputFile))
	ui.outputEntry.OnChanged = ui.onOutputChanged

	inputBrowse := widget.NewButton(IconFolder, ui.onBrowseInput)
	infoBtn := widget.NewButton(ui.localization.GetText(KeyInfo), ui.onShowInfo)
	outputBrowse := widget.NewButton(IconFolder, ui.onBrowseOutput)

	sameAsInput := []string{soxparam.SameAsInput}
	ui.sampleSelect = widget.NewSelect(sameAsInput, func(string) { ui.reloadDependentTables() })
	ui.bitSelect = widget.NewSelect(sameAsInput, nil)
	ui.rateSelect = widget.NewSelect(sameAsInput, nil)
	ui.channelSelect = widget.NewSelect(sameAsInput, nil)
	for _, s := range []*widget.Select{ui.sampleSelect, ui.bitSelect, ui.rateSelect, ui.channelSelect} {
		s.SetSelectedIndex(0)
	}

	ui.showBtn = widget.NewButton(ui.localization.GetText(KeyShowCommand), ui.onShowCommand)
	ui.runBtn = widget.NewButton(IconPlay+" "+ui.localization.GetText(KeyRun), ui.onRun)
	ui.runBtn.Importance = widget.HighImportance
	copyBtn := widget.NewButton(IconCopy+" "+ui.localization.GetText(KeyCopyCommand), ui.onCopyCommand)

	revealBtn := widget.NewButton(ui.localization.GetText(KeyRevealOutput), ui.onRevealOutput)
	revealBtn.Importance = widget.LowImportance
	openBtn := widget.NewButton(ui.localization.GetText(KeyOpenOutput), ui.onOpenOutput)
	openBtn.Importance = widget.LowImportance

	files := widget.NewForm(
		widget.NewFormItem(ui.localization.GetText(KeyInputFile),
			container.NewBorder(nil, nil, nil, container.NewHBox(inputBrowse, infoBtn), ui.inputEntry)),
		widget.NewFormItem(ui.localization.GetText(KeyOutputFile),
			container.NewBorder(nil, nil, nil, outputBrowse, ui.outputEntry)),
	)

	format := container.NewGridWithColumns(2,
		widget.NewForm(
			widget.NewFormItem(ui.localization.GetText(KeySampleFormat), ui.sampleSelect),
			widget.NewFormItem(ui.localization.GetText(KeyBitDepth), ui.bitSelect),
		),
		widget.NewForm(
			widget.NewFormItem(ui.localization.GetText(KeySampleRate), ui.rateSelect),
			widget.NewFormItem(ui.localization.GetText(KeyChannels), ui.channelSelect),
		),
	)

	actions := container.NewHBox(ui.showBtn, ui.runBtn, copyBtn, widget.NewSeparator(), revealBtn, openBtn)

	return container.NewVBox(files, widget.NewSeparator(), format, actions)
}

// onOutputChanged reloads the sample format table when the extension changes
func (ui *RootUI) onOutputChanged(path string) {
	ext := platform.LowerExtension(path)
	if !ui.selection.ExtensionChanged(ext) {
		return
	}

	table, ok := soxparam.LookupFormat(ext)
	if !ok {
		log.Printf("No option tables for .%s", ext)
		ui.formatTable = nil
		for _, s := range []*widget.Select{ui.sampleSelect, ui.bitSelect, ui.rateSelect, ui.channelSelect} {
			setOptions(s, []string{soxparam.SameAsInput})
		}
		return
	}

	log.Printf("Loading option tables for .%s", ext)
	ui.formatTable = table
	setOptions(ui.sampleSelect, table.SampleFormats())
	ui.reloadDependentTables()
}

// reloadDependentTables refreshes bit depth, rate and channel lists for the
// selected sample format.
func (ui *RootUI) reloadDependentTables() {
	if ui.formatTable == nil || ui.bitSelect == nil {
		return
	}
	index := ui.sampleSelect.SelectedIndex()
	if index < 0 || !ui.selection.FormatChanged(index) {
		return
	}

	setOptions(ui.bitSelect, ui.formatTable.BitDepths(index))
	setOptions(ui.rateSelect, ui.formatTable.SampleRates(index))
	setOptions(ui.channelSelect, ui.formatTable.Channels())
}

func (ui *RootUI) onBrowseInput() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		ui.setInputFile(reader.URI().Path())
	}, ui.window)
	fd.SetFilter(storage.NewExtensionFileFilter(AudioFileExtensions))
	fd.Show()
}

func (ui *RootUI) onBrowseOutput() {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		ui.outputEntry.SetText(path)
	}, ui.window)
	fd.SetFilter(storage.NewExtensionFileFilter(AudioFileExtensions))
	fd.Show()
}

// setOptions replaces the entries of a selector and selects the first one
func setOptions(s *widget.Select, options []string) {
	s.Options = options
	s.ClearSelected()
	if len(options) > 0 {
		s.SetSelectedIndex(0)
	}
	s.Refresh()
}

// selectIfPresent selects value when it is one of the options
func selectIfPresent(s *widget.Select, value string) {
	for i, option := range s.Options {
		if option == value {
			s.SetSelectedIndex(i)
			return
		}
	}
}
