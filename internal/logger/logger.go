package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/julianstephens/doseprompt/internal/constants"
)

// Logger is the process-wide logger; nil until Init succeeds
var Logger *log.Logger

// Config describes one doseprompt invocation
type Config struct {
	Debug     bool
	ConfigDir string
	// Command and Store are recorded in the session header line
	Command string
	Store   string
}

// File returns the log file path under configDir
func File(configDir string) string {
	return filepath.Join(configDir, "logs", constants.AppName+".log")
}

// Init points the global logger at a rotating file and writes a session
// header. The TUI owns the terminal, so stderr only joins in debug mode.
func Init(cfg Config) error {
	path := File(cfg.ConfigDir)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	var w io.Writer = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    2, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}
	level := log.InfoLevel
	if cfg.Debug {
		w = io.MultiWriter(os.Stderr, w)
		level = log.DebugLevel
	}

	Logger = log.NewWithOptions(w, log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          constants.DisplayName,
	})

	Logger.Info("Session started",
		"version", constants.Version,
		"command", cfg.Command,
		"store", cfg.Store,
		"debug", cfg.Debug,
	)
	return nil
}

func Debug(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

func Info(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Info(msg, keyvals...)
	}
}

func Warn(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}

func Error(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
}

// Screen logs a debug line tagged with the TUI screen it concerns
func Screen(screen constants.Screen, msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.With("screen", screen.String()).Debug(msg, keyvals...)
	}
}
