package system

import (
	"bufio"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// ClipboardHelpers are the binaries the clipboard library shells out to.
var ClipboardHelpers = []string{"pbcopy", "xclip", "xsel", "wl-copy", "clip.exe"}

type Profile struct {
	OS            string
	Distro        string
	Version       string
	Arch          string
	Shell         string
	ClipboardBins []string
}

func Detect() (*Profile, error) {
	profile := &Profile{
		OS:   runtime.GOOS,
		Arch: runtime.GOARCH,
	}

	switch runtime.GOOS {
	case "linux":
		profile.Shell = os.Getenv("SHELL")
		profile.Distro, profile.Version = parseOSRelease("/etc/os-release")
		if isWSL() {
			profile.Distro = "wsl"
		}
	case "darwin":
		profile.Shell = os.Getenv("SHELL")
		profile.Distro = "macos"
	case "windows":
		profile.Shell = detectWindowsShell()
		profile.Distro = "windows"
	default:
		profile.Shell = os.Getenv("SHELL")
	}

	profile.ClipboardBins = lookupBins(ClipboardHelpers)
	return profile, nil
}

// ClipboardReady reports whether copying to the system clipboard can work.
// Windows uses the native API; elsewhere a helper binary must be on PATH.
func (p *Profile) ClipboardReady() bool {
	if p.OS == "windows" {
		return true
	}
	for _, bin := range p.ClipboardBins {
		if bin != "clip.exe" {
			return true
		}
	}
	return false
}

func lookupBins(bins []string) []string {
	var found []string
	for _, bin := range bins {
		if _, err := exec.LookPath(bin); err == nil {
			found = append(found, bin)
		}
	}
	return found
}

func parseOSRelease(path string) (string, string) {
	file, err := os.Open(path)
	if err != nil {
		return "", ""
	}
	defer file.Close()

	var distro, version string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "ID=") {
			distro = trimValue(strings.TrimPrefix(line, "ID="))
		}
		if strings.HasPrefix(line, "VERSION_ID=") {
			version = trimValue(strings.TrimPrefix(line, "VERSION_ID="))
		}
	}
	return distro, version
}

func trimValue(val string) string {
	return strings.Trim(val, "\"'")
}

func detectWindowsShell() string {
	if os.Getenv("PSModulePath") != "" {
		return "powershell"
	}
	if os.Getenv("ComSpec") != "" {
		return "cmd"
	}
	return "powershell"
}

func isWSL() bool {
	if os.Getenv("WSL_DISTRO_NAME") != "" {
		return true
	}
	data, err := os.ReadFile("/proc/version")
	if err != nil {
		return false
	}
	return strings.Contains(strings.ToLower(string(data)), "microsoft")
}
