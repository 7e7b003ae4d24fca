package cli

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mytravelspring/rio-nido-complete/internal/server"
)

func init() {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the itinerary JSON API",
		Run:   runServe,
	}

	cmd.Flags().StringP("addr", "a", "", "Listen address (default: $RIONIDO_ADDR or :8080)")
	cmd.Flags().String("origins", "*", "Comma-separated CORS allowed origins")

	RootCmd.AddCommand(cmd)
}

func runServe(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	origins, _ := cmd.Flags().GetString("origins")
	if addr == "" {
		addr = cfg.Addr
	}

	srv := server.New(newPlanner(cmd), server.Options{
		SessionTTL:     cfg.SessionTTL,
		RateLimit:      cfg.RateLimit,
		RateBurst:      int(cfg.RateLimit * 2),
		ShareBase:      cfg.ShareBase,
		AllowedOrigins: strings.Split(origins, ","),
		Logger:         logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.ListenAndServe(ctx, addr); err != nil {
		exitErr("serve", err)
	}
}
