package common

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// ConfigureLogging sets up logging for long-running processes: timestamped
// entries on standard out.
func ConfigureLogging() {
	log.SetFormatter(&log.TextFormatter{ForceColors: true, FullTimestamp: true})
	log.SetOutput(os.Stdout)
}

// ConfigureCommandLineLogging sets up logging for interactive CLI use:
// plain untimestamped messages on standard error, keeping standard out free
// for command output such as regenerated scripts.
func ConfigureCommandLineLogging() {
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	log.SetOutput(os.Stderr)
}
