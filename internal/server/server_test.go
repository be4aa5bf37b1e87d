package server

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_StopsWhenContextIsCancelled(t *testing.T) {
	dir := t.TempDir()
	srv, err := NewServer(Options{
		Address:            "127.0.0.1:0",
		AuthorizedKeysPath: filepath.Join(dir, "authorized_keys"),
		HostKeyPath:        filepath.Join(dir, "ssh_host_ed25519"),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestNewServer_DefaultsAuthorizedKeys(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	srv, err := NewServer(Options{
		Address:     "127.0.0.1:0",
		HostKeyPath: filepath.Join(t.TempDir(), "ssh_host_ed25519"),
	})
	require.NoError(t, err)
	assert.Equal(t, "authorized_keys", filepath.Base(srv.authorizedKeysPath))
}
