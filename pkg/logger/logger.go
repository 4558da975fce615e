package logger

import (
	"io"
	"os"

	"github.com/natefinch/lumberjack"
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/soxt/soxt/pkg/stringutils"
)

var (
	logFilePath = ""
)

/* Public */

// Init configures the global logrus instance. verbosity 0 is info,
// 1 is debug and anything above is trace. When logPath is set, output is
// mirrored to a rotated log file.
func Init(verbosity int, logPath string) error {
	var useLevel logrus.Level
	switch {
	case verbosity == 0:
		useLevel = logrus.InfoLevel
	case verbosity == 1:
		useLevel = logrus.DebugLevel
	default:
		useLevel = logrus.TraceLevel
	}

	logrus.SetFormatter(&prefixed.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
		ForceFormatting: true,
	})
	logrus.SetLevel(useLevel)
	logrus.SetOutput(os.Stderr)

	if logPath != "" {
		rotator := &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    5,
			MaxBackups: 2,
			MaxAge:     14,
		}

		logrus.SetOutput(io.MultiWriter(os.Stderr, rotator))
		logFilePath = logPath
	}

	return nil
}

func GetLogger(prefix string) *logrus.Entry {
	return logrus.WithField("prefix", prefix)
}

func ShowUsing() {
	if logFilePath != "" {
		log := GetLogger("log")
		log.Infof("Using %s = %q", stringutils.LeftJust("LOG", " ", 10), logFilePath)
	}
}
