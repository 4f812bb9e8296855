package cmd

import (
	"github.com/spf13/cobra"

	"github.com/misterclayt0n/treino/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the planner over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPlanner(cmd.Context())
		if err != nil {
			return err
		}
		srv := server.New(p, cfg.Planner.Weeks, cfg.Planner.DaysPerWeek, log)
		return srv.ListenAndServe(cmd.Context(), cfg.Server.Addr())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
