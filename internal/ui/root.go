package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/sakurazen/soxgui/internal/config"
	"github.com/sakurazen/soxgui/internal/model"
	"github.com/sakurazen/soxgui/internal/platform"
	"github.com/sakurazen/soxgui/internal/preset"
	"github.com/sakurazen/soxgui/internal/runner"
	"github.com/sakurazen/soxgui/internal/soxargs"
	"github.com/sakurazen/soxgui/internal/soxparam"
)

// Tab indexes in the order they are added
const (
	TabMain = iota
	TabHelp
	TabExtended
	TabEffects
	TabSettings
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	runner       runner.Runner
	settings     *config.Settings
	localization *Localization

	selection   *model.OutputSelection
	formatTable soxparam.FormatParams // nil when the output extension has no table
	effects     *model.EffectChain

	tabs *container.AppTabs

	// busy is set while a run started from this window is in flight
	busy    bool
	pending sync.WaitGroup

	// Main tab
	inputEntry    *widget.Entry
	outputEntry   *widget.Entry
	sampleSelect  *widget.Select
	bitSelect     *widget.Select
	rateSelect    *widget.Select
	channelSelect *widget.Select
	showBtn       *widget.Button
	runBtn        *widget.Button
	console       *widget.Entry
	progress      *widget.ProgressBarInfinite
	status        *widget.Label

	// Help tab
	helpFormatSelect *widget.Select
	helpEffectSelect *widget.Select

	// Extended tab
	verbositySelect    *widget.Select
	bufferCheck        *widget.Check
	bufferEntry        *widget.Entry
	inputBufferCheck   *widget.Check
	inputBufferEntry   *widget.Entry
	multiThreadedCheck *widget.Check
	inputEndianSelect  *widget.Select
	volumeEntry        *widget.Entry
	ignoreLengthCheck  *widget.Check
	commentCheck       *widget.Check
	commentEntry       *widget.Entry
	outputEndianSelect *widget.Select

	// Effects tab
	effectSelect   *widget.Select
	addEffectBtn   *widget.Button
	paramForm      *fyne.Container
	paramValues    []func() string
	effectList     *widget.List
	selectedEffect int

	settingsTab *SettingsTab
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, soxRunner runner.Runner) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:         window,
		app:            app,
		runner:         soxRunner,
		settings:       settings,
		localization:   localization,
		selection:      model.NewOutputSelection(),
		effects:        model.NewEffectChain(),
		selectedEffect: -1,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	window.SetOnDropped(ui.onDropped)
	window.SetCloseIntercept(ui.onClose)
	soxRunner.SetUpdateCallback(ui.onRunUpdate)

	ui.setupUI()

	log.Printf("RootUI initialized, sox path: %q", settings.GetSoxPath())
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.settingsTab = NewSettingsTab(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)

	ui.tabs = container.NewAppTabs(
		container.NewTabItem(ui.localization.GetText(KeyTabMain), ui.createMainTab()),
		container.NewTabItem(ui.localization.GetText(KeyTabHelp), ui.createHelpTab()),
		container.NewTabItem(ui.localization.GetText(KeyTabExtended), ui.createExtendedTab()),
		container.NewTabItem(ui.localization.GetText(KeyTabEffects), ui.createEffectsTab()),
		container.NewTabItem(ui.localization.GetText(KeyTabSettings), ui.settingsTab.Container()),
	)

	ui.console = widget.NewMultiLineEntry()
	ui.console.TextStyle = fyne.TextStyle{Monospace: true}
	ui.console.Wrapping = fyne.TextWrapOff
	ui.console.SetMinRowsVisible(10)

	ui.progress = widget.NewProgressBarInfinite()
	ui.status = widget.NewLabel("")
	ui.showBusy()

	clearBtn := widget.NewButton(ui.localization.GetText(KeyClearConsole), func() { ui.setConsole("") })
	clearBtn.Importance = widget.LowImportance

	bottom := container.NewBorder(
		container.NewBorder(nil, nil, ui.status, clearBtn, ui.progress),
		nil, nil, nil,
		ui.console,
	)

	content := container.NewVSplit(ui.tabs, bottom)
	content.Offset = 0.55

	ui.window.SetContent(content)

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.showSettingsTab)
	lastRunItem := fyne.NewMenuItem(ui.localization.GetText(KeyLastRun), ui.onShowLastRun)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for _, code := range []string{LangJapanese, LangEnglish} {
		langCode := code
		name := ui.localization.GetAvailableLanguages()[code]
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), lastRunItem, settingsItem),
		languageMenu,
	))
}

// onLanguageChange rebuilds the widgets with the new language and restores
// every selection from a job snapshot.
func (ui *RootUI) onLanguageChange(langCode string) {
	job := ui.currentJob()
	consoleText := ui.console.Text
	current := ui.tabs.SelectedIndex()

	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.selection = model.NewOutputSelection()
	ui.formatTable = nil
	ui.selectedEffect = -1
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.setupUI()

	ui.applyJob(job)
	ui.console.SetText(consoleText)
	ui.tabs.SelectIndex(current)
}

// currentCommand reads every tab into a command
func (ui *RootUI) currentCommand() soxargs.Command {
	return soxargs.Command{
		Global:    ui.globalOptions(),
		Input: soxargs.InputOptions{
			Volume:       strings.TrimSpace(ui.volumeEntry.Text),
			IgnoreLength: ui.ignoreLengthCheck.Checked,
		},
		InputFile: strings.TrimSpace(ui.inputEntry.Text),
		Format: soxargs.OutputFormat{
			SampleFormat: ui.sampleSelect.Selected,
			BitDepth:     ui.bitSelect.Selected,
			SampleRate:   ui.rateSelect.Selected,
			Channels:     ui.channelSelect.Selected,
		},
		Output: soxargs.OutputOptions{
			AddComment: ui.commentCheck.Checked,
			Comment:    ui.commentEntry.Text,
			Endian:     endianAt(ui.outputEndianSelect),
		},
		OutputFile: strings.TrimSpace(ui.outputEntry.Text),
		Effects:    ui.effects.Items(),
	}
}

// currentJob snapshots the selections as a job
func (ui *RootUI) currentJob() *preset.Job {
	return preset.FromCommand(ui.currentCommand())
}

// applyJob loads a job into the widgets
func (ui *RootUI) applyJob(job *preset.Job) {
	ui.inputEntry.SetText(job.Input)
	ui.outputEntry.SetText(job.Output)
	ui.onOutputChanged(job.Output)

	selectIfPresent(ui.sampleSelect, job.Format.SampleFormat)
	ui.reloadDependentTables()
	selectIfPresent(ui.bitSelect, job.Format.BitDepth)
	selectIfPresent(ui.rateSelect, job.Format.SampleRate)
	selectIfPresent(ui.channelSelect, job.Format.Channels)

	ui.applyGlobalOptions(job.Global)
	ui.volumeEntry.SetText(job.InputOpts.Volume)
	ui.ignoreLengthCheck.SetChecked(job.InputOpts.IgnoreLength)
	ui.commentCheck.SetChecked(job.OutputOpts.AddComment)
	ui.commentEntry.SetText(job.OutputOpts.Comment)
	ui.outputEndianSelect.SetSelectedIndex(int(job.OutputOpts.Endian))

	ui.effects = model.NewEffectChain(job.Effects...)
	ui.selectedEffect = -1
	ui.effectList.UnselectAll()
	ui.effectList.Refresh()
}

// onShowCommand renders the command line without running it
func (ui *RootUI) onShowCommand() {
	args, err := ui.currentCommand().Args()
	if err != nil {
		ui.setConsole(ui.describeError(err))
		return
	}
	ui.setConsole(soxargs.CommandLine(ui.settings.GetSoxPath(), args))
}

// onCopyCommand copies the command line to the clipboard
func (ui *RootUI) onCopyCommand() {
	args, err := ui.currentCommand().Args()
	if err != nil {
		ui.setConsole(ui.describeError(err))
		return
	}
	line := soxargs.CommandLine(ui.settings.GetSoxPath(), args)
	ui.app.Clipboard().SetContent(line)
	ui.setConsole(line + "\n\n" + ui.localization.GetText(KeyCommandCopied))
}

// onRun builds the command and executes it
func (ui *RootUI) onRun() {
	args, err := ui.currentCommand().Args()
	if err != nil {
		ui.setConsole(ui.describeError(err))
		return
	}
	ui.execute(args)
}

// onShowInfo runs sox --i on the input file
func (ui *RootUI) onShowInfo() {
	input := strings.TrimSpace(ui.inputEntry.Text)
	if input == "" {
		ui.setConsole(ui.localization.GetText(KeyMissingFiles))
		return
	}
	ui.execute(soxargs.InformationOption(input))
}

// onShowHelp runs one of the help commands
func (ui *RootUI) onShowHelp(help soxargs.HelpCommand) {
	args, err := help.Args()
	if err != nil {
		ui.setConsole(ui.describeError(err))
		return
	}
	ui.execute(args)
}

// execute runs sox in the background and posts the result to the console.
// Requests made while a run is in flight are ignored.
func (ui *RootUI) execute(args soxargs.Option) {
	if ui.busy {
		log.Printf("Ignoring sox request while a run is active")
		return
	}

	soxPath := ui.settings.GetSoxPath()
	if soxPath == "" {
		ui.onSoxPathMissing()
		return
	}

	ui.runner.SetSoxPath(soxPath)
	ui.runner.SetTimeout(ui.settings.GetRunTimeout())
	ui.setBusy(true)

	ui.pending.Add(1)
	go func() {
		run, err := ui.runner.Run(context.Background(), args)
		fyne.Do(func() {
			defer ui.pending.Done()
			ui.setBusy(false)
			ui.showRunResult(run, err)
		})
	}()
}

// showRunResult maps a finished run to console text or a dialog
func (ui *RootUI) showRunResult(run *model.SoxRun, err error) {
	switch {
	case errors.Is(err, runner.ErrSoxPathNotSet):
		ui.onSoxPathMissing()
	case errors.Is(err, runner.ErrBusy):
		ui.setConsole(ui.localization.GetText(KeySoxBusy))
	case errors.Is(err, runner.ErrStart):
		log.Printf("Failed to start sox: %v", err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeySoxStartFailed), err), ui.window)
	case err != nil && run == nil:
		ui.setConsole(err.Error())
	default:
		log.Printf("Run %s finished with status %s", run.ID, run.Status)
		ui.setConsole(run.Message)
	}
}

// onRunUpdate is called by the runner from its own goroutine
func (ui *RootUI) onRunUpdate(run *model.SoxRun) {
	fyne.Do(func() {
		ui.status.SetText(ui.runStatusText(run))
	})
}

func (ui *RootUI) runStatusText(run *model.SoxRun) string {
	switch {
	case run.Status.IsActive():
		return fmt.Sprintf(ui.localization.GetText(KeyRunStatus), run.Status)
	case run.Status.IsFinished():
		return fmt.Sprintf(ui.localization.GetText(KeyRunFinished), run.Status, run.ExitCode, run.Duration().Round(time.Millisecond))
	}
	return run.Status.String()
}

// onShowLastRun prints the command line and output of the most recent run
func (ui *RootUI) onShowLastRun() {
	run, ok := ui.runner.LastRun()
	if !ok {
		ui.setConsole(ui.localization.GetText(KeyNoRunYet))
		return
	}
	ui.status.SetText(ui.runStatusText(run))
	ui.setConsole(soxargs.CommandLine(ui.settings.GetSoxPath(), run.Args) + "\n\n" + run.Message)
}

// onSoxPathMissing moves to the settings tab and explains why
func (ui *RootUI) onSoxPathMissing() {
	ui.showSettingsTab()
	ui.setConsole(ui.localization.GetText(KeySoxPathNotSet))
}

func (ui *RootUI) showSettingsTab() {
	ui.tabs.SelectIndex(TabSettings)
}

// describeError turns builder errors into console messages
func (ui *RootUI) describeError(err error) string {
	switch {
	case errors.Is(err, soxargs.ErrMissingFile):
		return ui.localization.GetText(KeyMissingFiles)
	case errors.Is(err, soxargs.ErrMissingTopic):
		return ui.localization.GetText(KeyMissingTopic)
	}
	return err.Error()
}

// setInputFile sets the input path and shows its info when enabled
func (ui *RootUI) setInputFile(path string) {
	ui.inputEntry.SetText(path)
	if ui.settings.GetShowInputFileInfo() {
		ui.onShowInfo()
	}
}

// OpenInputFile is used for a file passed on the command line
func (ui *RootUI) OpenInputFile(path string) {
	if strings.TrimSpace(path) == "" {
		return
	}
	log.Printf("Opening input file from arguments: %s", path)
	ui.setInputFile(path)
}

// onDropped assigns the first dropped file to the input and the second to the output
func (ui *RootUI) onDropped(_ fyne.Position, uris []fyne.URI) {
	if len(uris) == 0 {
		return
	}
	log.Printf("Dropped %d file(s)", len(uris))
	ui.tabs.SelectIndex(TabMain)
	if len(uris) > 1 {
		ui.outputEntry.SetText(uris[1].Path())
	}
	ui.setInputFile(uris[0].Path())
}

// onRevealOutput shows the output file in the file manager
func (ui *RootUI) onRevealOutput() {
	if err := platform.OpenFileInManager(strings.TrimSpace(ui.outputEntry.Text)); err != nil {
		log.Printf("Error revealing output: %v", err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpenFile), err), ui.window)
	}
}

// onOpenOutput opens the output file with the default application
func (ui *RootUI) onOpenOutput() {
	if err := platform.OpenFileWithDefaultApp(strings.TrimSpace(ui.outputEntry.Text)); err != nil {
		log.Printf("Error opening output: %v", err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpenFile), err), ui.window)
	}
}

// onSettingsSaved applies new settings to the runner
func (ui *RootUI) onSettingsSaved() {
	ui.runner.SetSoxPath(ui.settings.GetSoxPath())
	ui.runner.SetTimeout(ui.settings.GetRunTimeout())
}

// onClose saves the settings before the window closes
func (ui *RootUI) onClose() {
	ui.settingsTab.Save()
	log.Printf("Settings saved on close")
	ui.window.Close()
}

func (ui *RootUI) setBusy(busy bool) {
	ui.busy = busy
	ui.showBusy()
	if busy {
		ui.setConsole(ui.localization.GetText(KeyRunning))
	}
}

// showBusy syncs the run button and progress bar with the busy flag
func (ui *RootUI) showBusy() {
	if ui.busy {
		ui.runBtn.Disable()
		ui.progress.Show()
		ui.progress.Start()
		return
	}
	ui.runBtn.Enable()
	ui.progress.Stop()
	ui.progress.Hide()
}

func (ui *RootUI) setConsole(text string) {
	ui.console.SetText(text)
}
