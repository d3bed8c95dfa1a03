package util

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	InputDir    string `mapstructure:"INPUT_DIR"`
	OutputDir   string `mapstructure:"OUTPUT_DIR"`
	Minify      bool   `mapstructure:"MINIFY"`
}

func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")
	viper.SetDefault("INPUT_DIR", ".")
	viper.SetDefault("OUTPUT_DIR", ".")
	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}

// OutputFile returns the path the rendered source for the named module is
// written to: the module name with a ".js" extension inside OutputDir.
//
// Module names may carry dots ("Agda.Primitive"); they stay part of the
// file name and only the extension is appended.
func (config *Config) OutputFile(moduleName string) (path string, err error) {
	if moduleName == "" {
		return "", fmt.Errorf("module name must not be empty")
	}
	if moduleName != filepath.Base(moduleName) {
		return "", fmt.Errorf("module name %q must not contain path separators", moduleName)
	}
	return filepath.Join(config.OutputDir, moduleName+".js"), nil
}
