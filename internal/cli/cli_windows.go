package cli

import "golang.org/x/sys/windows"

const codePageUTF8 = 65001

// Switch the console to UTF-8 in both directions so that names and URLs
// outside of the OEM code page print intact.
func init() {
	kernel32 := windows.NewLazySystemDLL("kernel32.dll")

	for _, proc := range []string{"SetConsoleCP", "SetConsoleOutputCP"} {
		_, _, _ = kernel32.NewProc(proc).Call(uintptr(codePageUTF8))
	}
}
