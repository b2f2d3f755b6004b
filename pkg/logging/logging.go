package logging

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	FormatJSON = "json"
	FormatText = "text"
)

func TextFormatter() log.Formatter {
	return &log.TextFormatter{
		DisableTimestamp: false,
		FullTimestamp:    true,
	}
}

func JSONFormatter() log.Formatter {
	return &log.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
	}
}

func formatter(format string) (log.Formatter, error) {
	switch format {
	case FormatJSON:
		return JSONFormatter(), nil
	case FormatText:
		return TextFormatter(), nil
	default:
		return nil, fmt.Errorf("log format '%s' is not recognized", format)
	}
}

// Setup configures the global logrus logger.
func Setup(level, format string) error {
	f, err := formatter(format)
	if err != nil {
		return err
	}

	logLevel, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("while setting log level: %s", err)
	}

	log.SetFormatter(f)
	log.SetLevel(logLevel)

	return nil
}
