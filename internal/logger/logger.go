package logger

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	globalLogger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	once         sync.Once
	logFile      *os.File
)

// Config controls where and how verbosely the global logger writes.
type Config struct {
	FilePath string
	Level    string
	Pretty   bool
}

// InitLogging configures the global zerolog logger. Only the first call has
// any effect.
func InitLogging(cfg Config) {
	once.Do(func() {
		var writers []io.Writer
		if cfg.Pretty {
			writers = append(writers, zerolog.ConsoleWriter{Out: os.Stdout})
		} else {
			writers = append(writers, os.Stdout)
		}

		if cfg.FilePath != "" {
			file, err := os.OpenFile(cfg.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0664)
			if err != nil {
				// logger is not ready yet
				os.Stderr.WriteString("Failed to open log file: " + err.Error() + "\n")
			} else {
				logFile = file
				writers = append(writers, file)
			}
		}

		setGlobal(New(zerolog.MultiLevelWriter(writers...), cfg.Level))
	})
}

// New builds a timestamped logger writing to w at the named level. An empty or
// unknown level means info.
func New(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).With().Timestamp().Logger().Level(lvl)
}

func setGlobal(l zerolog.Logger) {
	globalLogger = l
	log.Logger = l
}

// Close releases the log file opened by InitLogging, if any.
func Close() error {
	if logFile == nil {
		return nil
	}
	return logFile.Close()
}

// WithLogger returns a new context containing the logger with additional fields.
func WithLogger(ctx context.Context, fields map[string]interface{}) context.Context {
	l := getLogger(ctx).With().Fields(fields).Logger()
	return l.WithContext(ctx)
}

// getLogger extracts the zerolog logger from the context, falling back to the global logger.
func getLogger(ctx context.Context) *zerolog.Logger {
	l := zerolog.Ctx(ctx)
	// zerolog.Ctx returns a disabled logger if none is in context
	if l.GetLevel() == zerolog.Disabled {
		return &globalLogger
	}
	return l
}

func DebugLog(ctx context.Context, msg string, args ...interface{}) {
	getLogger(ctx).Debug().Msgf(msg, args...)
}

func InfoLog(ctx context.Context, msg string, args ...interface{}) {
	getLogger(ctx).Info().Msgf(msg, args...)
}

func WarnLog(ctx context.Context, msg string, args ...interface{}) {
	getLogger(ctx).Warn().Msgf(msg, args...)
}

func ErrorLog(ctx context.Context, msg string, args ...interface{}) {
	getLogger(ctx).Error().Msgf(msg, args...)
}

// ErrorErr logs at error level with err attached as the "error" field.
func ErrorErr(ctx context.Context, err error, msg string, args ...interface{}) {
	getLogger(ctx).Error().Err(err).Msgf(msg, args...)
}
