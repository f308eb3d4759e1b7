package client

import (
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config resolves where the backend lives.
type Config interface {
	Server() string
}

// LoadConfig reads the backend base URL from a .whatson config file (home
// directory or cwd) or the WHATSON_SERVER environment variable.
func LoadConfig() (Config, error) {
	viper.SetDefault("server", "http://localhost:8787")
	viper.SetConfigName(".whatson") // .yaml is implicit
	viper.SetEnvPrefix("WHATSON")
	viper.AutomaticEnv()

	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return &fileConfig{ServerURL: viper.GetString("server")}, nil
}

type fileConfig struct {
	ServerURL string `json:"server"`
}

func (f *fileConfig) Server() string {
	return f.ServerURL
}
