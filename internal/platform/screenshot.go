package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vovakirdan/tui-eel/internal/core"
)

// ScreenshotDir returns ~/.eel/screenshots.
func ScreenshotDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".eel", "screenshots"), nil
}

// WriteScreenshot writes the plain-text screen under ScreenshotDir and
// returns the file path.
func WriteScreenshot(gameID string, screen *core.Screen) (string, error) {
	dir, err := ScreenshotDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", gameID, timestamp))

	if err := os.WriteFile(path, []byte(screen.String()), 0o600); err != nil {
		return "", err
	}
	return path, nil
}
