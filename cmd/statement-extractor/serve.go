package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/insightdelivered/statement-extractor/internal/api"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the extraction HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr := viper.GetString("server.addr")

			app := api.NewApp()

			go func() {
				<-cmd.Context().Done()
				if err := app.Shutdown(); err != nil {
					slog.Error("server shutdown", "error", err)
				}
			}()

			slog.Info("serving extraction API", "addr", addr)
			return app.Listen(addr)
		},
	}

	cmd.Flags().String("addr", ":8080", "listen address")
	_ = viper.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))
	return cmd
}
