package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhairyaPatel2210/portfolio/internal/pkg/security"
)

func TestEncryptAPIKeyCommand(t *testing.T) {
	kp, err := security.GenerateKeyPair()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "public.pem")
	require.NoError(t, os.WriteFile(path, []byte(kp.PublicKey), 0o600))

	t.Cleanup(func() { publicKeyFile, apiKey = "", "" })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader("key-from-stdin\n"))
	rootCmd.SetArgs([]string{"encrypt-api-key", "--public-key", path})
	require.NoError(t, rootCmd.Execute())

	plaintext, err := security.Decrypt(strings.TrimSpace(out.String()), kp.PrivateKey)
	require.NoError(t, err)
	assert.Equal(t, "key-from-stdin", plaintext)

	out.Reset()
	rootCmd.SetArgs([]string{"encrypt-api-key", "--public-key", path, "--api-key", "abc123"})
	require.NoError(t, rootCmd.Execute())

	plaintext, err = security.Decrypt(strings.TrimSpace(out.String()), kp.PrivateKey)
	require.NoError(t, err)
	assert.Equal(t, "abc123", plaintext)
}
