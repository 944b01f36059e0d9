package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DhairyaPatel2210/portfolio/internal/pkg/security"
)

var (
	publicKeyFile string
	apiKey        string
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt-api-key",
	Short: "Encrypt an API key with a public key for POST /users/auth/api-key",
	Long: `Encrypts an API key with RSA-OAEP (SHA-256) under the PEM public key
returned by GET /users/public-key and prints the base64 ciphertext to send as
encryptedKey. The key is read from stdin when --api-key is not given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pem, err := os.ReadFile(publicKeyFile)
		if err != nil {
			return fmt.Errorf("failed to read public key: %w", err)
		}

		key := apiKey
		if key == "" {
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && line == "" {
				return fmt.Errorf("failed to read api key from stdin: %w", err)
			}
			key = strings.TrimSpace(line)
		}
		if key == "" {
			return fmt.Errorf("api key is empty")
		}

		ciphertext, err := security.EncryptWithPublicKey(string(pem), key)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ciphertext)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(encryptCmd)
	encryptCmd.Flags().StringVar(&publicKeyFile, "public-key", "", "Path to the PEM public key")
	encryptCmd.Flags().StringVar(&apiKey, "api-key", "", "API key to encrypt (defaults to stdin)")
	_ = encryptCmd.MarkFlagRequired("public-key")
}
