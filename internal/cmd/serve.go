package cmd

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/renato0307/swipelist/internal/config"
	"github.com/renato0307/swipelist/internal/logging"
	"github.com/renato0307/swipelist/internal/server"
)

// ServeCmd starts the SSH server
type ServeCmd struct {
	ErrorClearDelay int    `help:"Seconds before error messages auto-clear" default:"10"`
	Host            string `help:"Host to bind to" default:"localhost"`
	Port            string `help:"Port to listen on" default:"23234"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	if s.ErrorClearDelay == config.DefaultErrorClearDelay && cli.settings != nil && cli.settings.ErrorClearDelay != nil {
		s.ErrorClearDelay = *cli.settings.ErrorClearDelay
	}

	opts, err := cli.Container.NewModelOptions(cli.settings, s.ErrorClearDelay, false)
	if err != nil {
		return err
	}

	var authorizedKeys string
	if cli.settings != nil {
		authorizedKeys = cli.settings.AuthorizedKeys
	}

	address := net.JoinHostPort(s.Host, s.Port)
	logging.Logger.Info("Starting swipelist SSH server",
		"address", address,
		"db_path", config.GetDBPath(),
		"authorized_keys", authorizedKeys)

	srv, err := server.NewServer(server.Options{
		Address:            address,
		AuthorizedKeysPath: authorizedKeys,
		HostKeyPath:        config.GetHostKeyPath(),
		Model:              opts,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("SSH server listening on %s\n", address)
	return srv.Start(ctx)
}
