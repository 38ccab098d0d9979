package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "toastkit",
		Short: "Server-driven toast notifications for Go web UIs",
		Long: `Toastkit renders toast notifications on the server and drives them
over a WebSocket: components build the HTML, a thin client applies
patches and forwards pointer gestures back.

The playground demonstrates every variant: types, anchors, colored
modes, drag-to-dismiss, and the per-region stacking cap.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
