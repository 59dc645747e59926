// Package config loads the catalog API credentials.
package config

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	prefix = "SPOTIFY"
	app    = "playlistify"
)

type Credentials struct {
	ClientID     string `envconfig:"CLIENT_ID" required:"true"`
	ClientSecret string `envconfig:"CLIENT_SECRET" required:"true"`
	RedirectURI  string `envconfig:"REDIRECT_URI" default:"http://localhost:8888/callback"`
}

// Files returns the dotenv files looked up, in order of precedence:
// variables already set in the environment always win
func Files() []string {
	return []string{".env", filepath.Join(xdg.ConfigHome, app, "env")}
}

func Load() (*Credentials, error) {
	for _, path := range Files() {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return Process()
}

// Process reads the credentials from the environment only
func Process() (*Credentials, error) {
	var credentials Credentials
	if err := envconfig.Process(prefix, &credentials); err != nil {
		return nil, err
	}
	return &credentials, nil
}
