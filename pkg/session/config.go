package session

import (
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config exposes the two things every command needs: where the backend
// lives and where the session identity is kept.
type Config interface {
	APIBase() string
	BasePath() string
}

const defaultAPIBase = "http://localhost:5000/api"

// LoadConfig reads .mailmind.yaml (current directory or MAILMIND_CONFIG_PATH)
// with MAILMIND_* environment overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("api_base", defaultAPIBase)
	viper.SetDefault("path", "~/.mailmind.db")
	viper.SetConfigName(".mailmind") // .yaml is implicit
	viper.SetEnvPrefix("MAILMIND")
	viper.AutomaticEnv()

	if override := os.Getenv("MAILMIND_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path := viper.GetString("path")
	if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}
	return &fileConfig{API: viper.GetString("api_base"), Path: path}, nil
}

type fileConfig struct {
	API  string `json:"api_base"`
	Path string `json:"path"`
}

func (f *fileConfig) APIBase() string  { return f.API }
func (f *fileConfig) BasePath() string { return f.Path }
