package cli

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
)

// execCommand is a test seam for exec.Command.
var execCommand = exec.Command

// systemMailOpener hands a mailto: link to the platform's default opener,
// which resolves it to the user's mail client.
type systemMailOpener struct{}

func (systemMailOpener) Open(link string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = execCommand("open", link)
	case "windows":
		cmd = execCommand("rundll32", "url.dll,FileProtocolHandler", link)
	default:
		cmd = execCommand("xdg-open", link)
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("could not open mail client: %w", err)
	}
	return nil
}

// systemClipboard writes through the OS clipboard.
type systemClipboard struct{}

func (systemClipboard) Write(text string) error {
	return clipboard.WriteAll(text)
}
