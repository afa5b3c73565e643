package chrome

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"hidenb/internal/logger"
	"hidenb/internal/ports"
)

// UserChromeFile is the stylesheet Joplin applies to the app chrome on startup
const UserChromeFile = "userchrome.css"

// Files implements ports.Chrome on the local filesystem. Loading a
// stylesheet adds an @import for it to the profile's userchrome.css once.
type Files struct {
	profileDir string
}

// Ensure Files implements ports.Chrome
var _ ports.Chrome = (*Files)(nil)

// NewFiles creates a chrome adapter for a Joplin profile directory
func NewFiles(profileDir string) *Files {
	return &Files{profileDir: profileDir}
}

// UserChromePath returns the path of the profile's userchrome.css
func (f *Files) UserChromePath() string {
	return filepath.Join(f.profileDir, UserChromeFile)
}

// WriteFile replaces path with text, creating parent directories
func (f *Files) WriteFile(_ context.Context, path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	// Write to a sibling temp file first so readers never see a partial stylesheet.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write stylesheet: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace stylesheet: %w", err)
	}
	return nil
}

// LoadStylesheet makes userchrome.css import path
func (f *Files) LoadStylesheet(_ context.Context, path string) error {
	if f.profileDir == "" {
		return fmt.Errorf("no profile directory configured")
	}

	line := ImportLine(path)
	chromePath := f.UserChromePath()

	existing, err := os.ReadFile(chromePath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read %s: %w", UserChromeFile, err)
	}
	if hasLine(string(existing), line) {
		return nil
	}

	// @import must precede other rules.
	content := line + "\n" + string(existing)
	if err := os.MkdirAll(f.profileDir, 0755); err != nil {
		return fmt.Errorf("failed to create profile directory: %w", err)
	}
	if err := os.WriteFile(chromePath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", UserChromeFile, err)
	}

	logger.Info("Linked stylesheet into userchrome.css", map[string]interface{}{
		"stylesheet": path,
		"userchrome": chromePath,
	})
	return nil
}

// ImportLine is the @import rule that loads path
func ImportLine(path string) string {
	return fmt.Sprintf("@import url(%q);", filepath.ToSlash(path))
}

func hasLine(content, line string) bool {
	sc := bufio.NewScanner(strings.NewReader(content))
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == line {
			return true
		}
	}
	return false
}
