package ui

import (
	"strings"

	"fyne.io/fyne/v2/lang"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Language codes
const (
	LangSystem   = "system"
	LangJapanese = "ja"
	LangEnglish  = "en"
)

// Text keys for localization
const (
	KeyAppTitle    = "app_title"
	KeyTabMain     = "tab_main"
	KeyTabHelp     = "tab_help"
	KeyTabExtended = "tab_extended"
	KeyTabEffects  = "tab_effects"
	KeyTabSettings = "tab_settings"
	KeyFile        = "file"
	KeySettings    = "settings"
	KeyLanguage    = "language"
	KeyQuit        = "quit"

	KeyInputFile    = "input_file"
	KeyOutputFile   = "output_file"
	KeyBrowse       = "browse"
	KeyInfo         = "info"
	KeySampleFormat = "sample_format"
	KeyBitDepth     = "bit_depth"
	KeySampleRate   = "sample_rate"
	KeyChannels     = "channels"
	KeyShowCommand  = "show_command"
	KeyRun          = "run"
	KeyCopyCommand  = "copy_command"
	KeyClearConsole = "clear_console"
	KeyRevealOutput = "reveal_output"
	KeyOpenOutput   = "open_output"
	KeyRunning      = "running"

	KeyHelpGlobal = "help_global"
	KeyHelpFormat = "help_format"
	KeyHelpEffect = "help_effect"
	KeyShowHelp   = "show_help"

	KeyGlobalOptions = "global_options"
	KeyVerbosity     = "verbosity"
	KeyDefault       = "default"
	KeyBuffer        = "buffer"
	KeyInputBuffer   = "input_buffer"
	KeyMultiThreaded = "multi_threaded"
	KeyInputEndian   = "input_endian"
	KeyInputOptions  = "input_options"
	KeyVolume        = "volume"
	KeyIgnoreLength  = "ignore_length"
	KeyOutputOptions = "output_options"
	KeyAddComment    = "add_comment"
	KeyOutputEndian  = "output_endian"

	KeyEffect       = "effect"
	KeyAddEffect    = "add_effect"
	KeyRemoveEffect = "remove_effect"
	KeyMoveUp       = "move_up"
	KeyMoveDown     = "move_down"
	KeyClearEffects = "clear_effects"
	KeySavePreset   = "save_preset"
	KeyLoadPreset   = "load_preset"
	KeyNoParameters = "no_parameters"

	KeyEffectNotEditable = "effect_not_editable"

	KeySoxPath           = "sox_path"
	KeyDetectSox         = "detect_sox"
	KeyCheckSox          = "check_sox"
	KeyShowInputFileInfo = "show_input_file_info"
	KeyRunTimeout        = "run_timeout"
	KeySave              = "save"
	KeySettingsSaved     = "settings_saved"

	KeySoxPathNotSet  = "sox_path_not_set"
	KeySoxNotFound    = "sox_not_found"
	KeySoxBusy        = "sox_busy"
	KeySoxStartFailed = "sox_start_failed"
	KeyCommandCopied  = "command_copied"
	KeyMissingFiles   = "missing_files"
	KeyMissingTopic   = "missing_topic"
	KeyPresetSaved    = "preset_saved"
	KeyPresetLoaded   = "preset_loaded"
	KeyErrorOpenFile  = "error_opening_file"

	KeyLastRun     = "last_run"
	KeyNoRunYet    = "no_run_yet"
	KeyRunStatus   = "run_status"
	KeyRunFinished = "run_finished"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: LangJapanese,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(langCode string) {
	if langCode == LangSystem || langCode == "" {
		langCode = systemLanguage()
	}

	if _, exists := l.texts[langCode]; exists {
		l.currentLanguage = langCode
	}
}

// systemLanguage picks the UI language from the operating system locale
func systemLanguage() string {
	return languageForLocale(lang.SystemLocale().LanguageString())
}

// languageForLocale maps a locale such as "ja-JP" to a supported language
func languageForLocale(locale string) string {
	if strings.HasPrefix(strings.ToLower(locale), LangJapanese) {
		return LangJapanese
	}
	return LangEnglish
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to Japanese
	if texts, exists := l.texts[LangJapanese]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns a map of available language codes to names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		LangJapanese: "日本語",
		LangEnglish:  "English",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts[LangJapanese] = map[string]string{
		KeyAppTitle:    "SoX GUI",
		KeyTabMain:     "メイン",
		KeyTabHelp:     "ヘルプ",
		KeyTabExtended: "拡張",
		KeyTabEffects:  "エフェクト",
		KeyTabSettings: "設定",
		KeyFile:        "ファイル",
		KeySettings:    "設定",
		KeyLanguage:    "言語",
		KeyQuit:        "終了",

		KeyInputFile:    "入力ファイル",
		KeyOutputFile:   "出力ファイル",
		KeyBrowse:       "参照",
		KeyInfo:         "情報",
		KeySampleFormat: "サンプル形式",
		KeyBitDepth:     "ビット深度",
		KeySampleRate:   "サンプリング周波数",
		KeyChannels:     "チャンネル",
		KeyShowCommand:  "コマンド表示",
		KeyRun:          "実行",
		KeyCopyCommand:  "コマンドをコピー",
		KeyClearConsole: "クリア",
		KeyRevealOutput: "出力を表示",
		KeyOpenOutput:   "出力を開く",
		KeyRunning:      "SoX 実行中...",

		KeyHelpGlobal: "全体のヘルプ",
		KeyHelpFormat: "フォーマットのヘルプ",
		KeyHelpEffect: "エフェクトのヘルプ",
		KeyShowHelp:   "ヘルプ表示",

		KeyGlobalOptions: "グローバルオプション",
		KeyVerbosity:     "詳細レベル",
		KeyDefault:       "既定",
		KeyBuffer:        "バッファサイズ",
		KeyInputBuffer:   "入力バッファサイズ",
		KeyMultiThreaded: "マルチスレッド",
		KeyInputEndian:   "入力のエンディアン",
		KeyInputOptions:  "入力オプション",
		KeyVolume:        "入力音量（倍率）",
		KeyIgnoreLength:  "ヘッダの長さを無視",
		KeyOutputOptions: "出力オプション",
		KeyAddComment:    "コメントを追加",
		KeyOutputEndian:  "出力のエンディアン",

		KeyEffect:       "エフェクト",
		KeyAddEffect:    "追加",
		KeyRemoveEffect: "削除",
		KeyMoveUp:       "上へ",
		KeyMoveDown:     "下へ",
		KeyClearEffects: "すべて削除",
		KeySavePreset:   "プリセット保存",
		KeyLoadPreset:   "プリセット読込",
		KeyNoParameters: "パラメータはありません",

		KeyEffectNotEditable: "このエフェクトは追加できません",

		KeySoxPath:           "SoX のパス",
		KeyDetectSox:         "自動検出",
		KeyCheckSox:          "確認",
		KeyShowInputFileInfo: "入力ファイルの情報を表示",
		KeyRunTimeout:        "実行の制限時間（秒）",
		KeySave:              "保存",
		KeySettingsSaved:     "設定を保存しました",

		KeySoxPathNotSet:  "SoX のパスを設定してください",
		KeySoxNotFound:    "SoX が見つかりません",
		KeySoxBusy:        "SoX は実行中です",
		KeySoxStartFailed: "SoX を起動できませんでした",
		KeyCommandCopied:  "コマンドをクリップボードにコピーしました",
		KeyMissingFiles:   "入力ファイルと出力ファイルを指定してください",
		KeyMissingTopic:   "項目を選択してください",
		KeyPresetSaved:    "プリセットを保存しました",
		KeyPresetLoaded:   "プリセットを読み込みました",
		KeyErrorOpenFile:  "ファイルを開けませんでした",

		KeyLastRun:     "前回の実行結果",
		KeyNoRunYet:    "まだ実行していません",
		KeyRunStatus:   "SoX: %s",
		KeyRunFinished: "SoX: %s (終了コード %d, %s)",
	}

	l.texts[LangEnglish] = map[string]string{
		KeyAppTitle:    "SoX GUI",
		KeyTabMain:     "Main",
		KeyTabHelp:     "Help",
		KeyTabExtended: "Extended",
		KeyTabEffects:  "Effects",
		KeyTabSettings: "Settings",
		KeyFile:        "File",
		KeySettings:    "Settings",
		KeyLanguage:    "Language",
		KeyQuit:        "Quit",

		KeyInputFile:    "Input file",
		KeyOutputFile:   "Output file",
		KeyBrowse:       "Browse",
		KeyInfo:         "Info",
		KeySampleFormat: "Sample format",
		KeyBitDepth:     "Bit depth",
		KeySampleRate:   "Sample rate",
		KeyChannels:     "Channels",
		KeyShowCommand:  "Show command",
		KeyRun:          "Run",
		KeyCopyCommand:  "Copy command",
		KeyClearConsole: "Clear",
		KeyRevealOutput: "Reveal output",
		KeyOpenOutput:   "Open output",
		KeyRunning:      "Running SoX...",

		KeyHelpGlobal: "General help",
		KeyHelpFormat: "Format help",
		KeyHelpEffect: "Effect help",
		KeyShowHelp:   "Show help",

		KeyGlobalOptions: "Global options",
		KeyVerbosity:     "Verbosity",
		KeyDefault:       "Default",
		KeyBuffer:        "Buffer size",
		KeyInputBuffer:   "Input buffer size",
		KeyMultiThreaded: "Multi-threaded",
		KeyInputEndian:   "Input endian",
		KeyInputOptions:  "Input options",
		KeyVolume:        "Input volume (factor)",
		KeyIgnoreLength:  "Ignore header length",
		KeyOutputOptions: "Output options",
		KeyAddComment:    "Add comment",
		KeyOutputEndian:  "Output endian",

		KeyEffect:       "Effect",
		KeyAddEffect:    "Add",
		KeyRemoveEffect: "Delete",
		KeyMoveUp:       "Up",
		KeyMoveDown:     "Down",
		KeyClearEffects: "Clear all",
		KeySavePreset:   "Save preset",
		KeyLoadPreset:   "Load preset",
		KeyNoParameters: "No parameters",

		KeyEffectNotEditable: "This effect cannot be added",

		KeySoxPath:           "SoX path",
		KeyDetectSox:         "Detect",
		KeyCheckSox:          "Check",
		KeyShowInputFileInfo: "Show input file info",
		KeyRunTimeout:        "Run time limit (seconds)",
		KeySave:              "Save",
		KeySettingsSaved:     "Settings saved",

		KeySoxPathNotSet:  "Please set the SoX path",
		KeySoxNotFound:    "SoX was not found",
		KeySoxBusy:        "SoX is already running",
		KeySoxStartFailed: "SoX could not be started",
		KeyCommandCopied:  "Command copied to clipboard",
		KeyMissingFiles:   "Please choose both an input and an output file",
		KeyMissingTopic:   "Please choose an item",
		KeyPresetSaved:    "Preset saved",
		KeyPresetLoaded:   "Preset loaded",
		KeyErrorOpenFile:  "Could not open the file",

		KeyLastRun:     "Last run",
		KeyNoRunYet:    "Nothing has been run yet",
		KeyRunStatus:   "SoX: %s",
		KeyRunFinished: "SoX: %s (exit %d, %s)",
	}
}
