package cli

import (
	"fmt"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables such as HOUSEHOLD_CONFIG from a .env
// file. An explicitly named file must exist; without a name a .env in the
// current directory is loaded when present. Variables already set in the
// environment take precedence.
func LoadEnv(path string) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("failed to load env file: %w", err)
		}
		return nil
	}

	// Try to load .env from current directory (ignore error if not found)
	_ = godotenv.Load()
	return nil
}
