package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/sakurazen/soxgui/internal/soxargs"
	"github.com/sakurazen/soxgui/internal/soxparam"
)

// createHelpTab builds the three help requests
func (ui *RootUI) createHelpTab() fyne.CanvasObject {
	globalBtn := widget.NewButton(ui.localization.GetText(KeyHelpGlobal), func() {
		ui.onShowHelp(soxargs.HelpCommand{Kind: soxargs.HelpGlobal})
	})

	ui.helpFormatSelect = widget.NewSelect(soxparam.FormatNames, nil)
	formatBtn := widget.NewButton(ui.localization.GetText(KeyShowHelp), func() {
		ui.onShowHelp(soxargs.HelpCommand{Kind: soxargs.HelpFormat, Topic: ui.helpFormatSelect.Selected})
	})

	ui.helpEffectSelect = widget.NewSelect(soxparam.EffectNames, nil)
	effectBtn := widget.NewButton(ui.localization.GetText(KeyShowHelp), func() {
		ui.onShowHelp(soxargs.HelpCommand{Kind: soxargs.HelpEffect, Topic: ui.helpEffectSelect.Selected})
	})

	return container.NewVBox(
		globalBtn,
		widget.NewSeparator(),
		widget.NewForm(
			widget.NewFormItem(ui.localization.GetText(KeyHelpFormat),
				container.NewBorder(nil, nil, nil, formatBtn, ui.helpFormatSelect)),
			widget.NewFormItem(ui.localization.GetText(KeyHelpEffect),
				container.NewBorder(nil, nil, nil, effectBtn, ui.helpEffectSelect)),
		),
	)
}
