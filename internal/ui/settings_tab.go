package ui

import (
	"context"
	"log"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/sakurazen/soxgui/internal/config"
	"github.com/sakurazen/soxgui/internal/platform"
	"github.com/sakurazen/soxgui/internal/runner"
)

// languageCodes is the display order of the language selector
var languageCodes = []string{config.DefaultLanguage, LangJapanese, LangEnglish}

// SettingsTab edits the user settings
type SettingsTab struct {
	settings     *config.Settings
	window       fyne.Window
	localization *Localization
	onSaved      func()

	container *fyne.Container

	// UI components
	soxPathEntry   *widget.Entry
	showInfoCheck  *widget.Check
	timeoutEntry   *widget.Entry
	languageSelect *widget.Select
	statusLabel    *widget.Label
}

// NewSettingsTab creates the settings tab
func NewSettingsTab(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsTab {
	st := &SettingsTab{
		settings:     settings,
		window:       window,
		localization: localization,
		onSaved:      onSaved,
	}

	st.createUI()
	st.loadCurrentSettings()
	return st
}

// Container returns the tab content
func (st *SettingsTab) Container() fyne.CanvasObject {
	return st.container
}

// createUI creates the settings UI
func (st *SettingsTab) createUI() {
	st.soxPathEntry = widget.NewEntry()
	st.soxPathEntry.SetPlaceHolder("/usr/bin/sox")

	browseBtn := widget.NewButton(IconFolder, st.onBrowseSox)
	detectBtn := widget.NewButton(st.localization.GetText(KeyDetectSox), st.onDetectSox)
	checkBtn := widget.NewButton(st.localization.GetText(KeyCheckSox), st.onCheckSox)
	soxPathRow := container.NewBorder(nil, nil, nil, container.NewHBox(browseBtn, detectBtn, checkBtn), st.soxPathEntry)

	st.showInfoCheck = widget.NewCheck(st.localization.GetText(KeyShowInputFileInfo), nil)

	st.timeoutEntry = widget.NewEntry()
	st.timeoutEntry.SetPlaceHolder(strconv.Itoa(config.MinRunTimeoutSeconds) + "-" + strconv.Itoa(config.MaxRunTimeoutSeconds))
	st.timeoutEntry.Validator = validateTimeout

	labels := st.settings.GetLanguageOptions()
	options := make([]string, 0, len(languageCodes))
	for _, code := range languageCodes {
		options = append(options, labels[code])
	}
	st.languageSelect = widget.NewSelect(options, nil)

	st.statusLabel = widget.NewLabel("")
	st.statusLabel.Wrapping = fyne.TextWrapWord

	saveBtn := widget.NewButton(IconSettings+" "+st.localization.GetText(KeySave), st.onSave)
	saveBtn.Importance = widget.HighImportance

	form := widget.NewForm(
		widget.NewFormItem(st.localization.GetText(KeySoxPath), soxPathRow),
		widget.NewFormItem("", st.showInfoCheck),
		widget.NewFormItem(st.localization.GetText(KeyRunTimeout), st.timeoutEntry),
		widget.NewFormItem(st.localization.GetText(KeyLanguage), st.languageSelect),
	)

	st.container = container.NewVBox(form, container.NewHBox(saveBtn), st.statusLabel)
}

// loadCurrentSettings loads current settings into the UI
func (st *SettingsTab) loadCurrentSettings() {
	st.soxPathEntry.SetText(st.settings.GetSoxPath())
	st.showInfoCheck.SetChecked(st.settings.GetShowInputFileInfo())
	st.timeoutEntry.SetText(strconv.Itoa(int(st.settings.GetRunTimeout().Seconds())))

	current := st.settings.GetLanguage()
	for i, code := range languageCodes {
		if code == current {
			st.languageSelect.SetSelectedIndex(i)
		}
	}
}

// Save stores the values of the tab. Invalid timeouts keep the previous value.
func (st *SettingsTab) Save() {
	st.settings.SetSoxPath(st.soxPathEntry.Text)
	st.settings.SetShowInputFileInfo(st.showInfoCheck.Checked)

	if seconds, err := strconv.Atoi(strings.TrimSpace(st.timeoutEntry.Text)); err == nil {
		st.settings.SetRunTimeoutSeconds(seconds)
	}

	if index := st.languageSelect.SelectedIndex(); index >= 0 {
		st.settings.SetLanguage(languageCodes[index])
	}

	// Reflect clamping
	st.timeoutEntry.SetText(strconv.Itoa(int(st.settings.GetRunTimeout().Seconds())))

	if st.onSaved != nil {
		st.onSaved()
	}
}

func (st *SettingsTab) onSave() {
	st.Save()
	st.statusLabel.SetText(st.localization.GetText(KeySettingsSaved))
	log.Printf("Settings saved: sox=%q timeout=%s", st.settings.GetSoxPath(), st.settings.GetRunTimeout())
}

func (st *SettingsTab) onBrowseSox() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		st.soxPathEntry.SetText(reader.URI().Path())
	}, st.window)
}

func (st *SettingsTab) onDetectSox() {
	path := platform.FindSox()
	if path == "" {
		st.statusLabel.SetText(st.localization.GetText(KeySoxNotFound))
		return
	}
	st.soxPathEntry.SetText(path)
	st.statusLabel.SetText(path)
}

// onCheckSox runs sox --version with the entered path
func (st *SettingsTab) onCheckSox() {
	path := strings.TrimSpace(st.soxPathEntry.Text)
	go func() {
		version, err := runner.CheckInstalled(context.Background(), path)
		fyne.Do(func() {
			if err != nil {
				log.Printf("SoX check failed for %q: %v", path, err)
				st.statusLabel.SetText(st.localization.GetText(KeySoxNotFound) + ": " + err.Error())
				return
			}
			st.statusLabel.SetText(version)
		})
	}()
}

func validateTimeout(text string) error {
	seconds, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return err
	}
	if seconds < config.MinRunTimeoutSeconds || seconds > config.MaxRunTimeoutSeconds {
		return strconv.ErrRange
	}
	return nil
}
