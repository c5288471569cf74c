package logging

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// NewLogger builds a logger writing to out. format is "text" or "json".
func NewLogger(level logrus.Level, format string, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)
	if strings.EqualFold(format, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		})
	}
	return logger
}
