package config

import (
	"os"
	"sync"
)

type AuthConfig struct {
	ServiceURL string
}

var (
	authConfig *AuthConfig
	authOnce   sync.Once
)

func LoadAuthConfig() *AuthConfig {
	authOnce.Do(func() {
		authConfig = &AuthConfig{
			ServiceURL: os.Getenv("AUTH_SERVICE_URL"),
		}
	})
	return authConfig
}
