package server

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/ssh"
	gossh "golang.org/x/crypto/ssh"

	"github.com/renato0307/swipelist/internal/logging"
)

// defaultAuthorizedKeysPath returns ~/.ssh/authorized_keys
func defaultAuthorizedKeysPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		logging.Logger.Error("Failed to get home directory", "error", err)
		return ""
	}
	return filepath.Join(homeDir, ".ssh", "authorized_keys")
}

// publicKeyHandler accepts keys listed in the authorized keys file
func (s *Server) publicKeyHandler(ctx ssh.Context, key ssh.PublicKey) bool {
	fingerprint := gossh.FingerprintSHA256(key)
	authorized := isKeyAuthorized(key, s.authorizedKeysPath)

	if authorized {
		logging.Logger.Info("SSH key authenticated",
			"user", ctx.User(),
			"fingerprint", fingerprint,
			"key_type", key.Type())
	} else {
		logging.Logger.Warn("Unauthorized SSH key",
			"user", ctx.User(),
			"fingerprint", fingerprint,
			"key_type", key.Type())
	}
	return authorized
}

// isKeyAuthorized checks if the client's public key is in authorizedKeysPath
func isKeyAuthorized(clientKey ssh.PublicKey, authorizedKeysPath string) bool {
	if authorizedKeysPath == "" {
		return false
	}
	file, err := os.Open(authorizedKeysPath)
	if err != nil {
		logging.Logger.Warn("Failed to open authorized_keys", "error", err, "path", authorizedKeysPath)
		return false
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		authorizedKey, comment, _, _, err := gossh.ParseAuthorizedKey([]byte(line))
		if err != nil {
			logging.Logger.Debug("Failed to parse authorized key line", "error", err)
			continue
		}

		if ssh.KeysEqual(clientKey, authorizedKey) {
			logging.Logger.Debug("Matched authorized key", "comment", comment)
			return true
		}
	}

	if err := scanner.Err(); err != nil {
		logging.Logger.Error("Error reading authorized_keys", "error", err)
		return false
	}
	return false
}
