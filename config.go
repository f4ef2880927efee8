package main

import (
	"io"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

const CONFIG_FILE = ".go-kilo"

type Config struct {
	// The file to write logs to, if omitted no logs will be written.
	LogFile string `yaml:"log_file"`
}

func loadConfigFromFile(homeDir string, config *Config) error {
	file, err := os.Open(path.Join(homeDir, CONFIG_FILE))
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return err
	}
	defer file.Close()
	err = yaml.NewDecoder(file).Decode(config)
	if err == io.EOF {
		// Empty file.
		return nil
	}
	return err
}

// LoadConfig never fails: an unreadable or malformed config file is ignored
// so that it cannot keep the terminal loop from starting.
func LoadConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return &Config{}
	}
	config := &Config{}
	if err := loadConfigFromFile(homeDir, config); err != nil {
		Logger.Print("Ignoring config file: ", err)
		return &Config{}
	}
	return config
}
