package cli

import (
	"fmt"

	"github.com/ehrlich-b/cube/internal/history"
	"github.com/ehrlich-b/cube/internal/web"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `Start the web server to provide a browser-based interface
for the Roux solver.`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		host, _ := cmd.Flags().GetString("host")
		noHistory, _ := cmd.Flags().GetBool("no-history")

		var db *history.DB
		if !noHistory {
			var err error
			db, err = history.OpenDefault()
			if err != nil {
				fmt.Printf("Warning: solve history disabled: %v\n", err)
				db = nil
			} else {
				if err := db.MigrateUp(); err != nil {
					fmt.Printf("Warning: solve history disabled: %v\n", err)
					db.Close()
					db = nil
				}
			}
		}

		fmt.Printf("Starting web server at http://%s:%s\n", host, port)

		server := web.NewServer(db)
		if err := server.Start(host + ":" + port); err != nil {
			fmt.Printf("Error starting server: %v\n", err)
		}
	},
}

func init() {
	serveCmd.Flags().StringP("port", "p", "8080", "Port to run the server on")
	serveCmd.Flags().StringP("host", "H", "localhost", "Host to bind the server to")
	serveCmd.Flags().Bool("no-history", false, "Disable solve history persistence")
}
