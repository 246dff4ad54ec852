package tui

import (
	"io"
	"log/slog"

	"github.com/goliatone/go-devme/pkg/render"
	"github.com/goliatone/go-devme/pkg/style"
)

// Theme captures optional formatting hints the shell applies when printing
// messages. Keep minimal to avoid coupling the shell to ANSI specifics.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
	DoneMark    string
	CurrentMark string
}

// DefaultTheme is used when WithTheme is not supplied.
var DefaultTheme = Theme{
	ErrorPrefix: "! ",
	DoneMark:    "[x]",
	CurrentMark: "> ",
}

// Option configures the Shell.
type Option func(*Shell)

// WithPromptDriver overrides the prompt driver used by the shell.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Shell) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithRenderers supplies the registry used for previews and exports.
func WithRenderers(registry *render.Registry) Option {
	return func(s *Shell) {
		if registry != nil {
			s.renderers = registry
		}
	}
}

// WithSelector resolves the go-theme renderer config for the chosen
// template and theme.
func WithSelector(selector *style.Selector) Option {
	return func(s *Shell) {
		if selector != nil {
			s.selector = selector
		}
	}
}

// WithExportPath sets the default file offered when exporting HTML.
func WithExportPath(path string) Option {
	return func(s *Shell) {
		if path != "" {
			s.exportPath = path
		}
	}
}

// WithPreviewFormat selects the renderer printed in preview mode.
func WithPreviewFormat(name string) Option {
	return func(s *Shell) {
		if name != "" {
			s.previewFormat = name
		}
	}
}

// WithExportFormat selects the renderer written by the export action.
func WithExportFormat(name string) Option {
	return func(s *Shell) {
		if name != "" {
			s.exportFormat = name
		}
	}
}

// WithTheme overrides the message prefixes and progress marks.
func WithTheme(theme Theme) Option {
	return func(s *Shell) {
		s.theme = theme
	}
}

// WithOutput directs the default survey driver's info messages.
func WithOutput(out io.Writer) Option {
	return func(s *Shell) {
		if out != nil {
			s.out = out
		}
	}
}

// WithLogger attaches a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Shell) {
		if logger != nil {
			s.logger = logger
		}
	}
}
