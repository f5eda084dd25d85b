package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/vrsandeep/freegames/internal/core"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "freegames",
		Short: "Browse the free-to-play games catalog from the terminal",
		Long: `freegames lists free-to-play games by category and shows the full
record for a single game, using the same catalog client as the web server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var verbose bool
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log catalog request failures to stderr")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
		if verbose {
			log.SetOutput(os.Stderr)
		} else {
			log.SetOutput(io.Discard)
		}
	}

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newListCmd(loadApp))
	rootCmd.AddCommand(newShowCmd(loadApp))
	rootCmd.AddCommand(newCategoriesCmd(loadApp))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// appLoader builds the application; tests substitute one backed by a fake catalog.
type appLoader func() (*core.App, error)

func loadApp() (*core.App, error) {
	return core.New(version)
}
