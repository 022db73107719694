package ui

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakurazen/soxgui/internal/config"
	"github.com/sakurazen/soxgui/internal/model"
	"github.com/sakurazen/soxgui/internal/preset"
	"github.com/sakurazen/soxgui/internal/soxargs"
	"github.com/sakurazen/soxgui/internal/soxparam"
)

// fakeRunner records the arguments of each run and answers with a fixed run.
// When release is set, Run blocks until it is closed.
type fakeRunner struct {
	mu       sync.Mutex
	path     string
	timeout  time.Duration
	calls    [][]string
	result   *model.SoxRun
	err      error
	release  chan struct{}
	onUpdate func(*model.SoxRun)
}

func (f *fakeRunner) SetUpdateCallback(callback func(*model.SoxRun)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onUpdate = callback
}

func (f *fakeRunner) SetSoxPath(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.path = path
}

func (f *fakeRunner) SetTimeout(timeout time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.timeout = timeout
}

func (f *fakeRunner) Run(_ context.Context, args []string) (*model.SoxRun, error) {
	f.mu.Lock()
	f.calls = append(f.calls, append([]string(nil), args...))
	release, callback, result, err := f.release, f.onUpdate, f.result, f.err
	f.mu.Unlock()

	if callback != nil {
		callback(&model.SoxRun{ID: "run-test", Args: args, Status: model.RunStatusRunning})
	}
	if release != nil {
		<-release
	}
	if callback != nil && result != nil {
		callback(result)
	}
	return result, err
}

func (f *fakeRunner) LastRun() (*model.SoxRun, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 || f.result == nil {
		return nil, false
	}
	run := *f.result
	run.Args = f.calls[len(f.calls)-1]
	return &run, true
}

func (f *fakeRunner) lastCall() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return nil
	}
	return f.calls[len(f.calls)-1]
}

func (f *fakeRunner) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func newTestUI(t *testing.T) (*RootUI, *fakeRunner, fyne.App) {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)

	settings := config.NewSettings(app)
	settings.SetLanguage(LangEnglish)

	started := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	fake := &fakeRunner{result: &model.SoxRun{
		ID:         "run-test",
		Status:     model.RunStatusCompleted,
		ExitCode:   0,
		Message:    "done\n",
		StartedAt:  started,
		FinishedAt: started.Add(1500 * time.Millisecond),
	}}
	window := test.NewWindow(nil)
	return NewRootUI(window, app, fake), fake, app
}

func TestNewRootUI(t *testing.T) {
	ui, _, _ := newTestUI(t)

	require.NotNil(t, ui.tabs)
	assert.Len(t, ui.tabs.Items, 5)
	assert.Equal(t, "Main", ui.tabs.Items[TabMain].Text)
	assert.Equal(t, "Settings", ui.tabs.Items[TabSettings].Text)
	assert.Equal(t, soxparam.SameAsInput, ui.sampleSelect.Selected)
}

func TestOutputExtensionReloadsTables(t *testing.T) {
	ui, _, _ := newTestUI(t)

	ui.outputEntry.SetText("/tmp/out.wav")
	ui.onOutputChanged("/tmp/out.wav")

	wav, ok := soxparam.LookupFormat("wav")
	require.True(t, ok)
	assert.Equal(t, wav.SampleFormats(), ui.sampleSelect.Options)
	assert.Equal(t, wav.BitDepths(0), ui.bitSelect.Options)
	assert.Equal(t, "wav", ui.selection.Ext)
	assert.Equal(t, 0, ui.selection.FormatIndex)

	// Changing the sample format reloads the dependent tables
	ui.sampleSelect.SetSelectedIndex(1)
	assert.Equal(t, 1, ui.selection.FormatIndex)
	assert.Equal(t, wav.BitDepths(1), ui.bitSelect.Options)

	// Unknown extensions fall back to "same as input"
	ui.outputEntry.SetText("/tmp/out.mp3")
	ui.onOutputChanged("/tmp/out.mp3")
	assert.Equal(t, []string{soxparam.SameAsInput}, ui.bitSelect.Options)
	assert.Nil(t, ui.formatTable)
}

func TestShowCommand(t *testing.T) {
	ui, _, _ := newTestUI(t)
	ui.settings.SetSoxPath("/usr/local/bin/sox")

	ui.onShowCommand()
	assert.Equal(t, "Please choose both an input and an output file", ui.console.Text)

	ui.inputEntry.SetText("in put.wav")
	ui.outputEntry.SetText("out.wav")
	ui.onOutputChanged("out.wav")
	selectIfPresent(ui.channelSelect, "mono")
	ui.verbositySelect.SetSelectedIndex(3)
	ui.effects.Add(model.NewEffectCommand("reverse"))

	ui.onShowCommand()
	assert.Equal(t, `sox -V2 "in put.wav" -c 1 out.wav reverse`, ui.console.Text)
}

func TestCopyCommand(t *testing.T) {
	ui, _, app := newTestUI(t)

	ui.inputEntry.SetText("a.wav")
	ui.outputEntry.SetText("b.wav")
	ui.onCopyCommand()

	assert.Equal(t, "sox a.wav b.wav", app.Clipboard().Content())
}

func TestRunWithoutSoxPathOpensSettings(t *testing.T) {
	ui, fake, _ := newTestUI(t)
	ui.settings.SetSoxPath("")

	ui.inputEntry.SetText("a.wav")
	ui.outputEntry.SetText("b.wav")
	ui.onRun()

	assert.Equal(t, TabSettings, ui.tabs.SelectedIndex())
	assert.Equal(t, "Please set the SoX path", ui.console.Text)
	assert.Zero(t, fake.callCount())
}

func TestRunExecutesCommand(t *testing.T) {
	ui, fake, _ := newTestUI(t)
	ui.settings.SetSoxPath("/usr/bin/sox")
	ui.settings.SetRunTimeoutSeconds(30)

	ui.inputEntry.SetText("a.wav")
	ui.outputEntry.SetText("b.wav")
	ui.ignoreLengthCheck.SetChecked(true)
	ui.onRun()
	ui.pending.Wait()

	assert.Equal(t, 1, fake.callCount())
	assert.Equal(t, []string{"--ignore-length", "a.wav", "b.wav"}, fake.lastCall())
	assert.Equal(t, "done\n", ui.console.Text)
	assert.Equal(t, "SoX: Completed (exit 0, 1.5s)", ui.status.Text)
	assert.False(t, ui.runBtn.Disabled())

	fake.mu.Lock()
	assert.Equal(t, "/usr/bin/sox", fake.path)
	assert.Equal(t, 30*time.Second, fake.timeout)
	fake.mu.Unlock()
}

func TestRequestsIgnoredWhileRunning(t *testing.T) {
	ui, fake, _ := newTestUI(t)
	ui.settings.SetSoxPath("/usr/bin/sox")
	fake.release = make(chan struct{})

	ui.inputEntry.SetText("a.wav")
	ui.outputEntry.SetText("b.wav")
	ui.onRun()
	require.True(t, ui.busy)
	assert.True(t, ui.runBtn.Disabled())

	// A second action must not re-enable the controls of the first run
	ui.onShowInfo()
	ui.onShowHelp(soxargs.HelpCommand{Kind: soxargs.HelpGlobal})
	assert.True(t, ui.busy)
	assert.True(t, ui.runBtn.Disabled())

	close(fake.release)
	ui.pending.Wait()

	assert.Equal(t, 1, fake.callCount())
	assert.False(t, ui.busy)
	assert.False(t, ui.runBtn.Disabled())
	assert.Equal(t, "done\n", ui.console.Text)
}

func TestShowLastRun(t *testing.T) {
	ui, _, _ := newTestUI(t)
	ui.settings.SetSoxPath("/usr/bin/sox")

	ui.onShowLastRun()
	assert.Equal(t, "Nothing has been run yet", ui.console.Text)

	ui.inputEntry.SetText("a.wav")
	ui.outputEntry.SetText("b.wav")
	ui.onRun()
	ui.pending.Wait()

	ui.onShowLastRun()
	assert.Equal(t, "sox a.wav b.wav\n\ndone\n", ui.console.Text)
}

func TestRunStatusText(t *testing.T) {
	ui, _, _ := newTestUI(t)

	assert.Equal(t, "SoX: Running", ui.runStatusText(&model.SoxRun{Status: model.RunStatusRunning}))

	started := time.Now()
	failed := &model.SoxRun{Status: model.RunStatusFailed, ExitCode: 2, StartedAt: started, FinishedAt: started.Add(250 * time.Millisecond)}
	assert.Equal(t, "SoX: Failed (exit 2, 250ms)", ui.runStatusText(failed))
}

func TestHelpCommands(t *testing.T) {
	ui, fake, _ := newTestUI(t)
	ui.settings.SetSoxPath("/usr/bin/sox")

	ui.onShowHelp(soxargs.HelpCommand{Kind: soxargs.HelpFormat})
	assert.Equal(t, "Please choose an item", ui.console.Text)

	ui.helpEffectSelect.SetSelected("reverb")
	ui.onShowHelp(soxargs.HelpCommand{Kind: soxargs.HelpEffect, Topic: ui.helpEffectSelect.Selected})
	ui.pending.Wait()
	assert.Equal(t, 1, fake.callCount())
	assert.Equal(t, []string{"--help-effect", "reverb"}, fake.lastCall())
}

func TestDroppedFiles(t *testing.T) {
	ui, fake, _ := newTestUI(t)
	ui.settings.SetSoxPath("/usr/bin/sox")
	ui.settings.SetShowInputFileInfo(true)

	ui.onDropped(fyne.NewPos(0, 0), []fyne.URI{
		storage.NewFileURI("/music/in.wav"),
		storage.NewFileURI("/music/out.flac"),
	})

	assert.Equal(t, "/music/in.wav", ui.inputEntry.Text)
	assert.Equal(t, "/music/out.flac", ui.outputEntry.Text)
	ui.pending.Wait()
	assert.Equal(t, 1, fake.callCount())
	assert.Equal(t, []string{"--i", "/music/in.wav"}, fake.lastCall())
}

func TestOpenInputFileSkipsInfoByDefault(t *testing.T) {
	ui, fake, _ := newTestUI(t)
	ui.settings.SetSoxPath("/usr/bin/sox")

	ui.OpenInputFile("/music/in.wav")

	assert.Equal(t, "/music/in.wav", ui.inputEntry.Text)
	assert.False(t, ui.busy)
	assert.Zero(t, fake.callCount())
}

func TestDroppedFileWithoutInfo(t *testing.T) {
	ui, fake, _ := newTestUI(t)
	ui.settings.SetSoxPath("/usr/bin/sox")
	ui.settings.SetShowInputFileInfo(false)

	ui.onDropped(fyne.NewPos(0, 0), []fyne.URI{storage.NewFileURI("/music/in.wav")})

	assert.Equal(t, "/music/in.wav", ui.inputEntry.Text)
	assert.Zero(t, fake.callCount())
}

func TestEffectChainEditing(t *testing.T) {
	ui, _, _ := newTestUI(t)

	ui.effectSelect.SetSelected("gain")
	require.Len(t, ui.paramValues, 1)

	// Blank required parameters are rejected
	ui.onAddEffect()
	assert.Zero(t, ui.effects.Len())
	assert.Contains(t, ui.console.Text, "gain")

	ui.effects.Add(model.NewEffectCommand("gain", "-3"))
	ui.effects.Add(model.NewEffectCommand("reverse"))
	ui.effects.Add(model.NewEffectCommand("norm", "-1"))
	ui.effectList.Refresh()

	ui.effectList.Select(2)
	ui.onMoveEffectUp()
	assert.Equal(t, "gain -3 norm -1 reverse", chainString(ui.effects))
	assert.Equal(t, 1, ui.selectedEffect)

	ui.onMoveEffectDown()
	assert.Equal(t, "gain -3 reverse norm -1", chainString(ui.effects))

	ui.effectList.Select(0)
	ui.onRemoveEffect()
	assert.Equal(t, "reverse norm -1", chainString(ui.effects))
	assert.Equal(t, -1, ui.selectedEffect)

	ui.onClearEffects()
	assert.Zero(t, ui.effects.Len())
}

func TestEffectSelectorListsAllEffects(t *testing.T) {
	ui, _, _ := newTestUI(t)

	assert.Equal(t, soxparam.EffectNames, ui.effectSelect.Options)
	assert.True(t, ui.addEffectBtn.Disabled(), "nothing selected yet")

	ui.effectSelect.SetSelected("reverse")
	assert.False(t, ui.addEffectBtn.Disabled())

	// Listed, but without a parameter table
	_, editable := soxparam.LookupEffect("reverb")
	require.False(t, editable)
	ui.effectSelect.SetSelected("reverb")
	assert.True(t, ui.addEffectBtn.Disabled())
	assert.Empty(t, ui.paramValues)

	ui.onAddEffect()
	assert.Zero(t, ui.effects.Len())

	ui.effectSelect.SetSelected("gain")
	assert.False(t, ui.addEffectBtn.Disabled())
}

func TestAddFilterEffect(t *testing.T) {
	ui, _, _ := newTestUI(t)

	ui.effectSelect.SetSelected("bandpass")
	require.Len(t, ui.paramValues, 3)

	form := ui.paramForm.Objects[0]
	require.NotNil(t, form)

	ui.paramValues[0] = func() string { return "1000" }
	ui.paramValues[1] = func() string { return "2" }
	ui.paramValues[2] = func() string { return soxparam.UnitOctaves }
	ui.onAddEffect()

	require.Equal(t, 1, ui.effects.Len())
	item, _ := ui.effects.At(0)
	assert.Equal(t, "bandpass 1000 2o", item.Command())
}

func TestPresetRoundTrip(t *testing.T) {
	ui, _, _ := newTestUI(t)

	job := &preset.Job{
		Input:  "a.wav",
		Output: "b.wav",
		Format: soxargs.OutputFormat{Channels: "stereo"},
		Global: soxargs.GlobalOptions{Verbosity: 2, MultiThreaded: true, InputEndian: soxargs.EndianSwap},
		OutputOpts: soxargs.OutputOptions{
			AddComment: true,
			Comment:    "master",
			Endian:     soxargs.EndianBig,
		},
		Effects: []model.EffectCommand{model.NewEffectCommand("speed", "1.5")},
	}
	path := filepath.Join(t.TempDir(), "job.yaml")
	require.NoError(t, preset.Save(path, job))

	require.NoError(t, ui.loadPreset(path))

	got := ui.currentJob()
	assert.Equal(t, "a.wav", got.Input)
	assert.Equal(t, "stereo", got.Format.Channels)
	assert.Equal(t, job.Global.Verbosity, got.Global.Verbosity)
	assert.Equal(t, soxargs.EndianSwap, got.Global.InputEndian)
	assert.Equal(t, job.OutputOpts, got.OutputOpts)
	assert.Equal(t, job.Effects, got.Effects)
}

func TestLanguageChangeKeepsSelections(t *testing.T) {
	ui, _, _ := newTestUI(t)

	ui.inputEntry.SetText("a.wav")
	ui.outputEntry.SetText("b.wav")
	ui.onOutputChanged("b.wav")
	ui.multiThreadedCheck.SetChecked(true)
	ui.effects.Add(model.NewEffectCommand("swap"))

	ui.onLanguageChange(LangJapanese)

	assert.Equal(t, "メイン", ui.tabs.Items[TabMain].Text)
	assert.Equal(t, LangJapanese, ui.settings.GetLanguage())
	assert.Equal(t, "a.wav", ui.inputEntry.Text)
	assert.True(t, ui.multiThreadedCheck.Checked)
	assert.Equal(t, 1, ui.effects.Len())
}

func TestSettingsSavedOnClose(t *testing.T) {
	ui, fake, _ := newTestUI(t)

	ui.settingsTab.soxPathEntry.SetText("/opt/sox")
	ui.settingsTab.timeoutEntry.SetText("500")
	ui.settingsTab.showInfoCheck.SetChecked(true)
	ui.onClose()

	assert.Equal(t, "/opt/sox", ui.settings.GetSoxPath())
	assert.Equal(t, config.MaxRunTimeoutSeconds*time.Second, ui.settings.GetRunTimeout())
	assert.True(t, ui.settings.GetShowInputFileInfo())

	fake.mu.Lock()
	defer fake.mu.Unlock()
	assert.Equal(t, "/opt/sox", fake.path)
}

func TestLanguageForLocale(t *testing.T) {
	tests := []struct {
		locale   string
		expected string
	}{
		{"ja", LangJapanese},
		{"ja-JP", LangJapanese},
		{"JA-jp", LangJapanese},
		{"en-US", LangEnglish},
		{"fr-FR", LangEnglish},
		{"", LangEnglish},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, languageForLocale(tt.locale), tt.locale)
	}
}

func chainString(c *model.EffectChain) string {
	s := ""
	for i, item := range c.Items() {
		if i > 0 {
			s += " "
		}
		s += item.Command()
	}
	return s
}
