package helper

import (
	"os"

	"github.com/joho/godotenv"
)

// SetServerConfig loads the env file selected by APP_ENV into the process
// environment. A missing file is not an error: deployed environments inject
// their configuration directly.
func SetServerConfig(envPath string) error {
	if envPath == "" {
		return nil
	}
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(envPath)
}
