package store

import (
	"log"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

type Config interface {
	BasePath() string
}

// LoadConfig resolves the store location from a .focus config file or
// FOCUS_* env vars, defaulting to ~/.focus.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.focus.db")
	viper.SetConfigName(".focus") // .yaml is implicit
	viper.SetEnvPrefix("FOCUS")
	viper.AutomaticEnv()

	if override := os.Getenv("FOCUS_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("error reading config file: %v", err)
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
