package bossy

import (
	"os"

	bossyio "github.com/dzonerzy/go-bossy/io"
)

// Setting configures NewParser, Parse and Usage.
type Setting func(*settings)

type settings struct {
	args    []string
	hasArgs bool
	colors  *bool
	io      *bossyio.IOManager
	logger  *bossyio.Logger
}

func newSettings(opts []Setting) *settings {
	s := &settings{}
	for _, opt := range opts {
		opt(s)
	}
	if s.io == nil {
		s.io = bossyio.New()
	}
	return s
}

// WithArgs sets the argument vector to parse. Without it the process
// arguments after the program name are used. An explicit empty slice
// parses nothing.
func WithArgs(args []string) Setting {
	return func(s *settings) {
		s.args = args
		s.hasArgs = true
	}
}

// WithColors forces usage colours on or off instead of detecting them.
func WithColors(enabled bool) Setting {
	return func(s *settings) {
		s.colors = &enabled
	}
}

// WithIO sets the terminal used for colour detection.
func WithIO(m *bossyio.IOManager) Setting {
	return func(s *settings) {
		s.io = m
	}
}

// WithLogger enables a debug trace of token classification.
func WithLogger(l *bossyio.Logger) Setting {
	return func(s *settings) {
		s.logger = l
	}
}

func (s *settings) argv() []string {
	if s.hasArgs {
		return s.args
	}
	if len(os.Args) < 2 {
		return nil
	}
	return os.Args[1:]
}

func (s *settings) palette() bossyio.Palette {
	if s.colors != nil {
		return bossyio.NewPalette(*s.colors)
	}
	return s.io.Palette()
}
