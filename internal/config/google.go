package config

import (
	"os"
	"sync"
)

type GoogleConfig struct {
	CredentialsFile string
}

var (
	googleConfig *GoogleConfig
	googleOnce   sync.Once
)

// LoadGoogleConfig resolves the service-account credentials file shared by
// the Drive and Sheets clients.
func LoadGoogleConfig() *GoogleConfig {
	googleOnce.Do(func() {
		credentialsFile := os.Getenv("GOOGLE_CREDENTIALS_FILE")
		if credentialsFile == "" {
			credentialsFile = "credentials.json"
		}
		googleConfig = &GoogleConfig{
			CredentialsFile: credentialsFile,
		}
	})
	return googleConfig
}
