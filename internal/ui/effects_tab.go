package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/sakurazen/soxgui/internal/model"
	"github.com/sakurazen/soxgui/internal/preset"
	"github.com/sakurazen/soxgui/internal/soxparam"
)

// createEffectsTab builds the effect editor and the chain list
func (ui *RootUI) createEffectsTab() fyne.CanvasObject {
	ui.paramForm = container.NewVBox()
	ui.addEffectBtn = widget.NewButton(ui.localization.GetText(KeyAddEffect), ui.onAddEffect)
	ui.addEffectBtn.Importance = widget.HighImportance
	ui.addEffectBtn.Disable()

	ui.effectSelect = widget.NewSelect(soxparam.EffectNames, ui.onEffectSelected)

	ui.effectList = widget.NewList(
		func() int { return ui.effects.Len() },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if item, ok := ui.effects.At(id); ok {
				obj.(*widget.Label).SetText(fmt.Sprintf("%d. %s", id+1, item.Command()))
			}
		},
	)
	ui.effectList.OnSelected = func(id widget.ListItemID) { ui.selectedEffect = id }
	ui.effectList.OnUnselected = func(widget.ListItemID) { ui.selectedEffect = -1 }

	removeBtn := widget.NewButton(ui.localization.GetText(KeyRemoveEffect), ui.onRemoveEffect)
	upBtn := widget.NewButton(IconUp+" "+ui.localization.GetText(KeyMoveUp), ui.onMoveEffectUp)
	downBtn := widget.NewButton(IconDown+" "+ui.localization.GetText(KeyMoveDown), ui.onMoveEffectDown)
	clearBtn := widget.NewButton(ui.localization.GetText(KeyClearEffects), ui.onClearEffects)
	clearBtn.Importance = widget.DangerImportance

	saveBtn := widget.NewButton(ui.localization.GetText(KeySavePreset), ui.onSavePreset)
	loadBtn := widget.NewButton(ui.localization.GetText(KeyLoadPreset), ui.onLoadPreset)

	editor := container.NewBorder(
		widget.NewForm(widget.NewFormItem(ui.localization.GetText(KeyEffect), ui.effectSelect)),
		ui.addEffectBtn, nil, nil,
		ui.paramForm,
	)

	listButtons := container.NewVBox(upBtn, downBtn, removeBtn, clearBtn, widget.NewSeparator(), saveBtn, loadBtn)
	chain := container.NewBorder(nil, nil, nil, listButtons, ui.effectList)

	return container.NewGridWithColumns(2, editor, chain)
}

// onEffectSelected rebuilds the parameter inputs for an effect. Effects
// without a parameter table are listed but cannot be added.
func (ui *RootUI) onEffectSelected(name string) {
	ui.paramForm.RemoveAll()
	ui.paramValues = nil

	params, ok := soxparam.LookupEffect(name)
	if !ok {
		ui.addEffectBtn.Disable()
		ui.paramForm.Add(widget.NewLabel(ui.localization.GetText(KeyEffectNotEditable)))
		return
	}
	ui.addEffectBtn.Enable()

	specs := params.Params()
	if len(specs) == 0 {
		ui.paramForm.Add(widget.NewLabel(ui.localization.GetText(KeyNoParameters)))
		return
	}

	form := widget.NewForm()
	for _, spec := range specs {
		label := spec.Name
		if spec.IsSelectable() {
			s := widget.NewSelect(spec.Values, nil)
			if !spec.Optional && len(spec.Values) > 0 {
				s.SetSelectedIndex(0)
			}
			ui.paramValues = append(ui.paramValues, func() string { return s.Selected })
			form.Append(label, s)
			continue
		}

		e := widget.NewEntry()
		e.SetPlaceHolder(spec.Unit)
		ui.paramValues = append(ui.paramValues, func() string { return e.Text })
		if spec.Unit != "" {
			label = fmt.Sprintf("%s (%s)", spec.Name, spec.Unit)
		}
		form.Append(label, e)
	}
	ui.paramForm.Add(form)
}

// onAddEffect validates the parameters and appends the effect to the chain
func (ui *RootUI) onAddEffect() {
	name := ui.effectSelect.Selected
	params, ok := soxparam.LookupEffect(name)
	if !ok {
		ui.setConsole(ui.localization.GetText(KeyMissingTopic))
		return
	}

	values := make([]string, len(ui.paramValues))
	for i, get := range ui.paramValues {
		values[i] = get()
	}

	args, err := params.OptionArgs(values)
	if err != nil {
		ui.setConsole(fmt.Sprintf("%s: %v", name, err))
		return
	}

	cmd := model.NewEffectCommand(name, args...)
	ui.effects.Add(cmd)
	log.Printf("Added effect %q (%d in chain)", cmd.Command(), ui.effects.Len())
	ui.effectList.Refresh()
}

func (ui *RootUI) onRemoveEffect() {
	if !ui.effects.Remove(ui.selectedEffect) {
		return
	}
	ui.selectedEffect = -1
	ui.effectList.UnselectAll()
	ui.effectList.Refresh()
}

func (ui *RootUI) onMoveEffectUp() {
	if ui.effects.MoveUp(ui.selectedEffect) {
		ui.effectList.Select(ui.selectedEffect - 1)
		ui.effectList.Refresh()
	}
}

func (ui *RootUI) onMoveEffectDown() {
	if ui.effects.MoveDown(ui.selectedEffect) {
		ui.effectList.Select(ui.selectedEffect + 1)
		ui.effectList.Refresh()
	}
}

func (ui *RootUI) onClearEffects() {
	ui.effects.Clear()
	ui.selectedEffect = -1
	ui.effectList.UnselectAll()
	ui.effectList.Refresh()
}

// onSavePreset writes the current selections to a YAML job file
func (ui *RootUI) onSavePreset() {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if err := preset.Save(path, ui.currentJob()); err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		ui.setConsole(ui.localization.GetText(KeyPresetSaved) + ": " + path)
	}, ui.window)
	fd.SetFileName("preset" + preset.FileExtension)
	fd.SetFilter(storage.NewExtensionFileFilter(PresetFileExtensions))
	fd.Show()
}

// onLoadPreset replaces the selections with a YAML job file
func (ui *RootUI) onLoadPreset() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		if err := ui.loadPreset(path); err != nil {
			dialog.ShowError(err, ui.window)
		}
	}, ui.window)
	fd.SetFilter(storage.NewExtensionFileFilter(PresetFileExtensions))
	fd.Show()
}

func (ui *RootUI) loadPreset(path string) error {
	job, err := preset.Load(path)
	if err != nil {
		return err
	}
	ui.applyJob(job)
	ui.setConsole(ui.localization.GetText(KeyPresetLoaded) + ": " + path)
	return nil
}
