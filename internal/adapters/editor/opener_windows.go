//go:build windows

package editor

func findPlatformEditor(path string) (string, []string) {
	return "notepad.exe", []string{path}
}
