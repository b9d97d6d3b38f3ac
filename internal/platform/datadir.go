package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// appDirName is the per-application segment under the platform's user
// configuration root (e.g. ~/.config/notekeep on Linux).
const appDirName = "notekeep"

// EnvDataDir overrides the resolved data directory when set.
const EnvDataDir = "NOTEKEEP_DATA_DIR"

// DataDir resolves the application-private data directory supplied by
// the host environment. It does not create the directory.
func DataDir() (string, error) {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return dir, nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve app data directory: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}
