package jobforgectl

import (
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// LoadCommandlineArgsFromConfigFile loads the jobforgectl config file into
// viper. When cfgFile is empty, $HOME/.jobforgectl.yaml is used; a missing
// config file is not an error, since all commands work without one.
func LoadCommandlineArgsFromConfigFile(cfgFile string) error {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			return errors.Errorf("[jobforgectl.LoadCommandlineArgsFromConfigFile] error getting user home directory: %s", err)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".jobforgectl")
	}

	viper.AutomaticEnv() // read in environment variables that match

	if err := viper.ReadInConfig(); err != nil {
		switch err.(type) {
		case viper.ConfigFileNotFoundError:
			// Users don't have to provide a config file, so do nothing.
			log.Debugf("no config file found")
		case *os.PathError:
			if cfgFile != "" {
				return errors.Errorf("[jobforgectl.LoadCommandlineArgsFromConfigFile] error reading config file %s: %s", cfgFile, err)
			}
			log.Debugf("no config file found")
		default:
			return errors.Errorf("[jobforgectl.LoadCommandlineArgsFromConfigFile] error reading config file %s: %s", viper.ConfigFileUsed(), err)
		}
	}
	return nil
}
