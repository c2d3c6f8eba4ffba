// Package config resolves repository configuration from the
// .minigit/config.yaml file. Only the commit author is configurable;
// resolution order is the MINIGIT_AUTHOR environment variable, then the
// config file, then the built-in default.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/minigit-vcs/minigit/internal/constants"
)

const (
	authorKey    = "author"
	authorEnvVar = "MINIGIT_AUTHOR"
)

// Config gives access to one repository's settings.
type Config struct {
	v *viper.Viper
}

// Load reads the repository's config file. A missing file is not an
// error; every lookup then falls back to defaults. A file that exists
// but does not parse is reported.
func Load(repoPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(repoPath, constants.MiniGit))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read repository config: %w", err)
		}
	}

	return &Config{v: v}, nil
}

// Author resolves the commit author identity.
func (c *Config) Author() string {
	if author := os.Getenv(authorEnvVar); author != "" {
		return author
	}
	if author := c.v.GetString(authorKey); author != "" {
		return author
	}
	return constants.DefaultAuthor
}
