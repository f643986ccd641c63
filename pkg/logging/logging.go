// Package logging owns the process-wide log destination for the module.
// Nothing is written anywhere until Init is called once; further Init
// calls warn and keep the first configuration.
package logging

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// switchWriter delegates to a swappable destination so loggers built
// before Init pick up the configured destination afterwards.
type switchWriter struct {
	mu sync.RWMutex
	w  io.Writer
}

func (s *switchWriter) Write(p []byte) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.w.Write(p)
}

func (s *switchWriter) swap(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.w = w
}

var (
	out         = &switchWriter{w: io.Discard}
	initMu      sync.Mutex
	initialized bool
	logFile     *os.File
)

// InitOption configures the logging destination.
type InitOption func(*initCfg)

type initCfg struct {
	stream   io.Writer
	filepath string
}

// WithStream sets the stream to log to. Defaults to os.Stderr; pass nil to
// disable stream output entirely.
func WithStream(w io.Writer) InitOption {
	return func(c *initCfg) {
		c.stream = w
	}
}

// WithFile additionally logs to the file at path, created or appended to.
func WithFile(path string) InitOption {
	return func(c *initCfg) {
		c.filepath = path
	}
}

// Init configures logging for the module, but only does it once. A second
// call logs a warning through the already-configured destination and
// changes nothing. Returns an error only if the log file cannot be opened.
func Init(opts ...InitOption) error {
	initMu.Lock()
	defer initMu.Unlock()

	if initialized {
		l := Logger()
		l.Warn().Msg("logging has already been initialized, refusing to do it again")
		return nil
	}

	cfg := initCfg{stream: os.Stderr}
	for _, opt := range opts {
		opt(&cfg)
	}

	var writers []io.Writer
	if cfg.stream != nil {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        cfg.stream,
			TimeFormat: time.RFC3339,
		})
	}
	if cfg.filepath != "" {
		f, err := os.OpenFile(cfg.filepath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			return err
		}
		logFile = f
		writers = append(writers, f)
	}

	if len(writers) == 0 {
		out.swap(io.Discard)
	} else {
		out.swap(zerolog.MultiLevelWriter(writers...))
	}
	initialized = true
	l := Logger()
	l.Info().Msg("successfully initialized logger")
	return nil
}

// Output returns the process-wide destination. Loggers built on it follow
// any later Init configuration.
func Output() io.Writer {
	return out
}

// Logger returns a logger writing to the process-wide destination.
func Logger() zerolog.Logger {
	return zerolog.New(out).With().Timestamp().Logger()
}

// Close closes the log file opened by Init, if any. Stream output is
// unaffected.
func Close() error {
	initMu.Lock()
	defer initMu.Unlock()
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}
