// Package clipboard provides cross-platform clipboard support.
package clipboard

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// candidate is one clipboard command to try for a platform.
type candidate struct {
	name string
	args []string
}

func candidates() []candidate {
	switch runtime.GOOS {
	case "darwin":
		return []candidate{{name: "pbcopy"}}
	case "windows":
		return []candidate{{name: "cmd", args: []string{"/c", "clip"}}}
	default:
		// Wayland first, then the X11 tools.
		return []candidate{
			{name: "wl-copy"},
			{name: "xclip", args: []string{"-selection", "clipboard"}},
			{name: "xsel", args: []string{"--clipboard", "--input"}},
		}
	}
}

func lookup() (candidate, bool) {
	for _, c := range candidates() {
		if _, err := exec.LookPath(c.name); err == nil {
			return c, true
		}
	}
	return candidate{}, false
}

// Write copies text to the system clipboard.
func Write(text string) error {
	c, ok := lookup()
	if !ok {
		return fmt.Errorf("no clipboard command found")
	}

	cmd := exec.Command(c.name, c.args...)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", c.name, err)
	}
	return nil
}

// Available checks if clipboard functionality is available.
func Available() bool {
	_, ok := lookup()
	return ok
}
