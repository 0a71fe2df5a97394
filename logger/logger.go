package logger

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// Init returns a timestamped structured logger writing to stdout, or to an
// append-only file when location names one.
//
// logger, err := logger.Init(cfg.LogLocation)
func Init(location string) (zerolog.Logger, error) {
	var output *os.File
	var err error

	if location == "" {
		location = "stdout"
	}

	switch location {
	case "stdout":
		output = os.Stdout
	case "stderr":
		output = os.Stderr
	default:
		output, err = os.OpenFile(location, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return zerolog.Logger{}, fmt.Errorf("failed to open log file: %w", err)
		}
	}

	return zerolog.New(output).With().Timestamp().Logger(), nil
}
