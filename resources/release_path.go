//go:build release

package resources

import (
	"os"
	"path/filepath"
)

const configDir = "xypong"

// release builds keep resources in the user's configuration directory. if
// there is no such directory then the home directory is used
func resourcePath() (string, error) {
	p, err := os.UserConfigDir()
	if err == nil {
		return filepath.Join(p, configDir), nil
	}

	p, err = os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(p, "."+configDir), nil
}
