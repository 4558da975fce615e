package spectrum

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// Show renders to a temporary PNG and opens the platform image viewer.
// Viewer startup errors propagate unmodified.
func (p *Plotter) Show(opts RenderOptions) error {
	f, err := os.CreateTemp("", "spectra-*.png")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	path := f.Name()
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := p.Save(path, opts); err != nil {
		return err
	}

	p.log.Debugf("Opening viewer for: %s", path)
	return openViewer(path)
}

func openViewer(path string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", path).Start()
	default:
		return exec.Command("xdg-open", path).Start()
	}
}
