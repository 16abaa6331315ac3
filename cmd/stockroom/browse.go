package stockroom

import (
	"fmt"
	"os"

	"github.com/dasdy/stockroom/logging"
	"github.com/dasdy/stockroom/tui"
	"github.com/spf13/cobra"
)

// browseCmd represents the browse command.
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the terminal client",
	Long: `Opens the full-screen terminal client against a running backend.
Log output goes to a file while the client owns the terminal.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("could not open log file %s: %w", logPath, err)
		}
		defer logFile.Close()

		logging.Setup(logFile, verbose)

		return tui.Run(apiURL)
	},
}

var (
	apiURL  string
	logPath string
	verbose bool
)

func init() {
	rootCmd.AddCommand(browseCmd)

	browseCmd.Flags().StringVarP(
		&apiURL,
		"api-url",
		"u",
		"http://localhost:3000",
		"Base URL of the stock backend")

	browseCmd.Flags().StringVar(
		&logPath,
		"log-file",
		"./stockroom.log",
		"Where log output goes while the client owns the terminal")

	browseCmd.Flags().BoolVarP(&verbose,
		"verbose",
		"v",
		false,
		"If provided, debug output will be shown")
}
