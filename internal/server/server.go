package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"
	"golang.org/x/sync/errgroup"

	"github.com/renato0307/swipelist/internal/logging"
	"github.com/renato0307/swipelist/internal/ui"
)

// ShutdownTimeout bounds the graceful shutdown of open sessions
const ShutdownTimeout = 30 * time.Second

// Options configures a Server
type Options struct {
	Address string
	// AuthorizedKeysPath defaults to ~/.ssh/authorized_keys
	AuthorizedKeysPath string
	HostKeyPath        string
	Model              ui.ModelOptions
}

// Server serves the swipeable list over SSH, one Bubble Tea program per session
type Server struct {
	address            string
	authorizedKeysPath string
	modelOptions       ui.ModelOptions
	wishServer         *ssh.Server
}

// NewServer creates a new SSH server instance
func NewServer(opts Options) (*Server, error) {
	s := &Server{
		address:            opts.Address,
		authorizedKeysPath: opts.AuthorizedKeysPath,
		modelOptions:       opts.Model,
	}
	if s.authorizedKeysPath == "" {
		s.authorizedKeysPath = defaultAuthorizedKeysPath()
	}

	// Middleware executes in reverse order (last to first)
	wishServer, err := wish.NewServer(
		wish.WithAddress(opts.Address),
		wish.WithHostKeyPath(opts.HostKeyPath),
		wish.WithPublicKeyAuth(s.publicKeyHandler),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(), // Require PTY
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logging.Logger.Info("Starting SSH server", "address", s.address)
		err := s.wishServer.ListenAndServe()
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("SSH server error: %w", err)
	})

	g.Go(func() error {
		<-ctx.Done()
		logging.Logger.Info("Shutting down SSH server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		if err := s.wishServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown SSH server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logging.Logger.Info("SSH server stopped")
	return nil
}
