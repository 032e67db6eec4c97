//go:build !release

package resources

const configDir = ".xypong"

func resourcePath() (string, error) {
	return configDir, nil
}
