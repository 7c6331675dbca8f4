package utils

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	s *zap.SugaredLogger
}

const (
	DEBUG = iota
	INFO
	WARN
	ERROR
)

var zapLevels = map[int]zapcore.Level{
	DEBUG: zapcore.DebugLevel,
	INFO:  zapcore.InfoLevel,
	WARN:  zapcore.WarnLevel,
	ERROR: zapcore.ErrorLevel,
}

// Log discards everything until InitLogger is called.
var Log = &Logger{s: zap.NewNop().Sugar()}

// InitLogger replaces Log with a console logger writing to w. Unknown levels
// fall back to INFO.
func InitLogger(level int, w io.Writer) {
	zl, ok := zapLevels[level]
	if !ok {
		zl = zapcore.InfoLevel
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(w), zl)

	Log = &Logger{s: zap.New(core).Sugar()}
}

func (lg *Logger) Debug(m string, a ...any) { lg.s.Debugf(m, a...) }
func (lg *Logger) Info(m string, a ...any)  { lg.s.Infof(m, a...) }
func (lg *Logger) Warn(m string, a ...any)  { lg.s.Warnf(m, a...) }
func (lg *Logger) Error(m string, a ...any) { lg.s.Errorf(m, a...) }

func (lg *Logger) Sync() error {
	return lg.s.Sync()
}
