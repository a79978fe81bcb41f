package outwriter

import (
	"os"

	"github.com/4NDR3-S01/ExposIA/internal/contract"
	"golang.org/x/term"
)

// terminalWidth returns the configured width override, the detected terminal
// width, or a conservative default when neither is available.
func terminalWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		return 80 // narrow terminals and CI
	}
	return detectedWidth
}

// getMaxTextWidth calculates the maximum width for the free-text column of a table
// given the space reserved by its fixed columns.
func getMaxTextWidth(cfg *contract.Config, fixedWidth int) int {
	// borders, separators and padding
	available := terminalWidth(cfg) - fixedWidth - 20
	if available < 15 {
		return 15
	}
	if available > 70 {
		return 70
	}
	return available
}
