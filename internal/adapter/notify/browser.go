package notify

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
)

// BrowserOpener opens links with the platform's default handler, which hands
// wa.me links to the messaging application.
type BrowserOpener struct{}

func (BrowserOpener) Open(ctx context.Context, link string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.CommandContext(ctx, "open", link)
	case "windows":
		cmd = exec.CommandContext(ctx, "rundll32", "url.dll,FileProtocolHandler", link)
	default:
		cmd = exec.CommandContext(ctx, "xdg-open", link)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open link: %w", err)
	}
	return nil
}
