package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/sakurazen/soxgui/internal/soxargs"
)

// createExtendedTab builds the global, input and output option controls
func (ui *RootUI) createExtendedTab() fyne.CanvasObject {
	verbosity := []string{ui.localization.GetText(KeyDefault)}
	for level := 0; level < VerbosityLevels; level++ {
		verbosity = append(verbosity, "-V"+strconv.Itoa(level))
	}
	ui.verbositySelect = widget.NewSelect(verbosity, nil)
	ui.verbositySelect.SetSelectedIndex(0)

	ui.bufferEntry = widget.NewEntry()
	ui.bufferEntry.SetPlaceHolder("8192")
	ui.bufferCheck = widget.NewCheck(ui.localization.GetText(KeyBuffer), nil)

	ui.inputBufferEntry = widget.NewEntry()
	ui.inputBufferEntry.SetPlaceHolder("8192")
	ui.inputBufferCheck = widget.NewCheck(ui.localization.GetText(KeyInputBuffer), nil)

	ui.multiThreadedCheck = widget.NewCheck(ui.localization.GetText(KeyMultiThreaded), nil)
	ui.inputEndianSelect = ui.newEndianSelect()

	ui.volumeEntry = widget.NewEntry()
	ui.volumeEntry.SetPlaceHolder("1.0")
	ui.ignoreLengthCheck = widget.NewCheck(ui.localization.GetText(KeyIgnoreLength), nil)

	ui.commentEntry = widget.NewEntry()
	ui.commentCheck = widget.NewCheck(ui.localization.GetText(KeyAddComment), nil)
	ui.outputEndianSelect = ui.newEndianSelect()

	global := widget.NewCard("", ui.localization.GetText(KeyGlobalOptions), widget.NewForm(
		widget.NewFormItem(ui.localization.GetText(KeyVerbosity), ui.verbositySelect),
		widget.NewFormItem("", container.NewGridWithColumns(2, ui.bufferCheck, ui.bufferEntry)),
		widget.NewFormItem("", container.NewGridWithColumns(2, ui.inputBufferCheck, ui.inputBufferEntry)),
		widget.NewFormItem("", ui.multiThreadedCheck),
		widget.NewFormItem(ui.localization.GetText(KeyInputEndian), ui.inputEndianSelect),
	))

	input := widget.NewCard("", ui.localization.GetText(KeyInputOptions), widget.NewForm(
		widget.NewFormItem(ui.localization.GetText(KeyVolume), ui.volumeEntry),
		widget.NewFormItem("", ui.ignoreLengthCheck),
	))

	output := widget.NewCard("", ui.localization.GetText(KeyOutputOptions), widget.NewForm(
		widget.NewFormItem("", container.NewGridWithColumns(2, ui.commentCheck, ui.commentEntry)),
		widget.NewFormItem(ui.localization.GetText(KeyOutputEndian), ui.outputEndianSelect),
	))

	return container.NewVScroll(container.NewVBox(global, input, output))
}

// newEndianSelect lists "default" followed by little, big and swap
func (ui *RootUI) newEndianSelect() *widget.Select {
	options := append([]string{ui.localization.GetText(KeyDefault)}, soxargs.EndianNames[1:]...)
	s := widget.NewSelect(options, nil)
	s.SetSelectedIndex(0)
	return s
}

// endianAt converts the selector index into an Endian
func endianAt(s *widget.Select) soxargs.Endian {
	index := s.SelectedIndex()
	if index < 0 {
		return soxargs.EndianDefault
	}
	return soxargs.Endian(index)
}

// globalOptions reads the global option controls
func (ui *RootUI) globalOptions() soxargs.GlobalOptions {
	verbosity := ui.verbositySelect.SelectedIndex()
	if verbosity < 0 {
		verbosity = 0
	}
	return soxargs.GlobalOptions{
		Verbosity:       verbosity,
		UseBuffer:       ui.bufferCheck.Checked,
		BufferSize:      ui.bufferEntry.Text,
		UseInputBuffer:  ui.inputBufferCheck.Checked,
		InputBufferSize: ui.inputBufferEntry.Text,
		MultiThreaded:   ui.multiThreadedCheck.Checked,
		InputEndian:     endianAt(ui.inputEndianSelect),
	}
}

func (ui *RootUI) applyGlobalOptions(g soxargs.GlobalOptions) {
	ui.verbositySelect.SetSelectedIndex(g.Verbosity)
	ui.bufferCheck.SetChecked(g.UseBuffer)
	ui.bufferEntry.SetText(g.BufferSize)
	ui.inputBufferCheck.SetChecked(g.UseInputBuffer)
	ui.inputBufferEntry.SetText(g.InputBufferSize)
	ui.multiThreadedCheck.SetChecked(g.MultiThreaded)
	ui.inputEndianSelect.SetSelectedIndex(int(g.InputEndian))
}
