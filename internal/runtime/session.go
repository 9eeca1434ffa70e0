package runtime

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/simplespec-labs/simplespec/internal/assets"
	"github.com/simplespec-labs/simplespec/internal/logging"
	"github.com/simplespec-labs/simplespec/internal/mapping"
	"github.com/simplespec-labs/simplespec/internal/paths"
)

// Stager copies the shared assets into an installation root.
type Stager interface {
	Stage(root string) error
}

// StagerFunc adapts a function to Stager.
type StagerFunc func(root string) error

func (f StagerFunc) Stage(root string) error { return f(root) }

// Session is the state shared by every runtime installed into one project:
// the installation root, the install mode and whether global staging has run.
type Session struct {
	root   string
	stager Stager
	log    zerolog.Logger

	mu     sync.Mutex
	mode   mapping.Mode
	staged bool
}

// Option configures a Session.
type Option func(*Session)

// WithMode sets the initial install mode.
func WithMode(mode mapping.Mode) Option {
	return func(s *Session) { s.mode = mode }
}

// WithStager replaces the default asset stager.
func WithStager(stager Stager) Option {
	return func(s *Session) { s.stager = stager }
}

// WithLogger sets the session logger.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Session) { s.log = log }
}

// NewSession returns a session installing into root in symlink mode, staging
// from assets.DefaultSources.
func NewSession(root string, opts ...Option) *Session {
	s := &Session{
		root: root,
		mode: mapping.DefaultMode,
		log:  logging.GetLogger("runtime"),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.stager == nil {
		s.stager = assets.NewStager()
	}
	return s
}

// Root returns the installation root.
func (s *Session) Root() string { return s.root }

// SharedRoot returns the shared assets directory under the root.
func (s *Session) SharedRoot() string { return paths.SharedRoot(s.root) }

// ConfigureInstallMode sets the mode used by every later mapping step.
func (s *Session) ConfigureInstallMode(mode mapping.Mode) error {
	parsed, err := mapping.ParseMode(string(mode))
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = parsed
	return nil
}

// Mode returns the current install mode.
func (s *Session) Mode() mapping.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Staged reports whether global staging has completed.
func (s *Session) Staged() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.staged
}

// Reset clears the staged flag so the next install stages again.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.staged = false
}

// StageGlobalAssets stages the shared assets once per session. The flag is
// only set after the stager succeeds, so a failed attempt can be retried.
func (s *Session) StageGlobalAssets() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.staged {
		return nil
	}

	s.log.Info().Str("root", s.root).Msg("Installing global assets")
	if err := s.stager.Stage(s.root); err != nil {
		return err
	}
	s.staged = true
	return nil
}
