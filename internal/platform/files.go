package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
	CmdCommand      = "cmd"
	StartCommand    = "start"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
	WindowsCmdFlag     = "/c"
)

// SoX binary names and the install locations searched when it is not on PATH
const (
	SoxBinaryName        = "sox"
	SoxWindowsBinaryName = "sox.exe"
)

var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}

	SoxWindowsInstallGlobs = []string{
		`C:\Program Files (x86)\sox-*\sox.exe`,
		`C:\Program Files\sox-*\sox.exe`,
	}
	SoxUnixInstallPaths = []string{
		"/usr/bin/sox",
		"/usr/local/bin/sox",
		"/opt/homebrew/bin/sox",
	}
)

// LowerExtension returns the extension of filePath without the dot, lower-cased.
// Paths without an extension yield "".
func LowerExtension(filePath string) string {
	ext := filepath.Ext(strings.TrimSpace(filePath))
	if len(ext) <= 1 {
		return ""
	}
	return strings.ToLower(ext[1:])
}

// FindSox looks for the SoX binary on PATH and in the usual install locations.
// It returns "" when nothing is found.
func FindSox() string {
	name := SoxBinaryName
	if runtime.GOOS == OSWindows {
		name = SoxWindowsBinaryName
	}
	if path, err := exec.LookPath(name); err == nil {
		return path
	}

	if runtime.GOOS == OSWindows {
		for _, pattern := range SoxWindowsInstallGlobs {
			matches, err := filepath.Glob(pattern)
			if err == nil && len(matches) > 0 {
				return matches[len(matches)-1]
			}
		}
		return ""
	}

	for _, path := range SoxUnixInstallPaths {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// FileExists reports whether path names an existing regular file
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// OpenFileInManager opens the file in the system file manager and highlights it
func OpenFileInManager(filePath string) error {
	absPath, err := existingAbsPath(filePath)
	if err != nil {
		return err
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, MacOSSelectFlag, absPath).Run()
	case OSWindows:
		return exec.Command(ExplorerCommand, WindowsSelectParam, absPath).Run()
	case OSLinux:
		return openFileInManagerLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFileInManagerLinux opens the directory containing the file.
// File selection is not standardized on Linux.
func openFileInManagerLinux(filePath string) error {
	dir := filepath.Dir(filePath)

	if err := exec.Command(XDGOpenCommand, dir).Run(); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dir).Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}

// OpenFileWithDefaultApp opens the file with the default system application
func OpenFileWithDefaultApp(filePath string) error {
	absPath, err := existingAbsPath(filePath)
	if err != nil {
		return err
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, absPath).Run()
	case OSWindows:
		return exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", absPath).Run()
	case OSLinux:
		return exec.Command(XDGOpenCommand, absPath).Run()
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

func existingAbsPath(filePath string) (string, error) {
	if strings.TrimSpace(filePath) == "" {
		return "", fmt.Errorf("file path is empty")
	}
	if !FileExists(filePath) {
		return "", fmt.Errorf("file does not exist: %s", filePath)
	}
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	return absPath, nil
}
