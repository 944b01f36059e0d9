package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Portfolio CMS backend",
	Long: `Backend of the portfolio CMS: user accounts, origin-bound session tokens,
the RSA API-key exchange and the dynamic CORS allow-list.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
