package stockroom

import (
	"fmt"

	"github.com/dasdy/stockroom/db"
	"github.com/dasdy/stockroom/web"
	"github.com/spf13/cobra"
)

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the development API server backed by a sqlite file",
	Long: `Serves the same resource contract as the production backend, backed by a
local sqlite database. Point the browse command at it with --api-url.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		storage, err := db.Connect(storagePath)
		if err != nil {
			return fmt.Errorf("could not open %s as sqlite file: %w", storagePath, err)
		}
		defer storage.Close()

		return web.StartServer(port, storage)
	},
}

var (
	storagePath string
	port        int
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(
		&storagePath,
		"storage",
		"o",
		"./stockroom.sqlite",
		"Path to the sqlite database file")

	serveCmd.Flags().IntVarP(
		&port, "port", "p", 3000,
		"Port on which the API server should listen")
}
