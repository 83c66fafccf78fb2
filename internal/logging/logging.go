// Package logging builds the zap logger used by reactfix.
package logging

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level names accepted by New.
const (
	LevelNone   = "none"
	LevelNormal = "normal"
	LevelDebug  = "debug"
)

// ValidLevels returns the accepted level names.
func ValidLevels() []string {
	return []string{LevelNone, LevelNormal, LevelDebug}
}

// ValidateLevel returns an error for an unknown level name. Empty is allowed
// and means normal.
func ValidateLevel(level string) error {
	switch level {
	case "", LevelNone, LevelNormal, LevelDebug:
		return nil
	}
	return fmt.Errorf("invalid log level %q: must be one of %s", level, strings.Join(ValidLevels(), ", "))
}

// New returns a console logger writing to w. Callers pass stderr so that
// stdout stays reserved for command output.
func New(level string, noColor bool, w io.Writer) (*zap.Logger, error) {
	if err := ValidateLevel(level); err != nil {
		return nil, err
	}

	var lowest zapcore.Level
	switch level {
	case LevelNone:
		return zap.NewNop(), nil
	case LevelDebug:
		lowest = zapcore.DebugLevel
	default:
		lowest = zapcore.InfoLevel
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	if noColor {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	} else {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(zapcore.AddSync(w)), lowest)
	return zap.New(core).Named("reactfix"), nil
}
