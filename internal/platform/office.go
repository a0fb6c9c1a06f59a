package platform

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// ErrOfficeNotFound is returned when no LibreOffice executable can be located
var ErrOfficeNotFound = errors.New("LibreOffice executable not found")

// LibreOffice executable names looked up in PATH
var (
	OfficeCommands = []string{"soffice", "libreoffice"}
)

// Well-known install locations per OS
var (
	MacOSOfficePaths = []string{
		"/Applications/LibreOffice.app/Contents/MacOS/soffice",
	}
	WindowsOfficePaths = []string{
		`C:\Program Files\LibreOffice\program\soffice.exe`,
		`C:\Program Files (x86)\LibreOffice\program\soffice.exe`,
	}
	LinuxOfficePaths = []string{
		"/usr/bin/soffice",
		"/usr/lib/libreoffice/program/soffice",
		"/opt/libreoffice/program/soffice",
		"/snap/bin/libreoffice",
	}
)

// lookPath is swapped in tests
var lookPath = exec.LookPath

// FindOfficeBinary resolves the LibreOffice executable. A configured value
// (a path or a command name) wins; otherwise PATH and the OS install
// locations are searched.
func FindOfficeBinary(configured string) (string, error) {
	if configured != "" {
		if path, err := resolveExecutable(configured); err == nil {
			return path, nil
		}
		return "", fmt.Errorf("%w: %s", ErrOfficeNotFound, configured)
	}

	for _, name := range OfficeCommands {
		if path, err := lookPath(name); err == nil {
			return path, nil
		}
	}

	for _, path := range officeInstallPaths(runtime.GOOS) {
		if isExecutableFile(path) {
			return path, nil
		}
	}

	return "", ErrOfficeNotFound
}

// resolveExecutable accepts an absolute or relative path, or a PATH command name
func resolveExecutable(name string) (string, error) {
	if filepath.IsAbs(name) || filepath.Base(name) != name {
		if isExecutableFile(name) {
			return name, nil
		}
		return "", fmt.Errorf("not an executable file: %s", name)
	}
	return lookPath(name)
}

// officeInstallPaths returns the install locations to probe on goos
func officeInstallPaths(goos string) []string {
	switch goos {
	case OSDarwin:
		return MacOSOfficePaths
	case OSWindows:
		return WindowsOfficePaths
	case OSLinux:
		return LinuxOfficePaths
	default:
		return nil
	}
}

func isExecutableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	if runtime.GOOS == OSWindows {
		return true
	}
	return info.Mode()&0111 != 0
}
