package pkg

import (
	"github.com/powerman/structlog"
	"io"
	"os"
	"path/filepath"
)

func InitLog() {
	structlog.DefaultLogger.
		SetPrefixKeys(
			structlog.KeyApp, structlog.KeyPID, structlog.KeyLevel, structlog.KeyUnit, structlog.KeyTime,
		).
		SetDefaultKeyvals(
			structlog.KeyApp, filepath.Base(os.Args[0]),
			structlog.KeySource, structlog.Auto,
		).
		SetSuffixKeys(
			structlog.KeyStack,
		).
		SetSuffixKeys(structlog.KeySource).
		SetKeysFormat(map[string]string{
			structlog.KeyTime:   " %[2]s",
			structlog.KeySource: " %6[2]s",
			structlog.KeyUnit:   " %6[2]s",
		})
}

// SetLogLevel accepts dbg, inf, wrn, err; anything else leaves the level unchanged.
func SetLogLevel(level string) {
	switch level {
	case "dbg", "inf", "wrn", "err":
		structlog.DefaultLogger.SetLogLevel(structlog.ParseLevel(level))
	}
}

// SetLogOutput sends the default logger output to stderr and w.
func SetLogOutput(w io.Writer) {
	structlog.DefaultLogger.SetOutput(io.MultiWriter(os.Stderr, w))
}
