// Command scraper is the footscout ingestion CLI — one-off scrape runs,
// backfill repair, and roster management, outside the scheduler's cron
// loop.
//
// Usage:
//
//	footscout-scraper run stats
//	footscout-scraper run matchlogs
//	footscout-scraper run full --seasons 15
//	footscout-scraper backfill --player 42
//	footscout-scraper players add --name "..." --team "..." --league "..." --position FW
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/albapepper/footscout/internal/config"
	"github.com/albapepper/footscout/internal/domain"
	"github.com/albapepper/footscout/internal/notify"
	"github.com/albapepper/footscout/internal/scheduler"
	"github.com/albapepper/footscout/internal/store"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "footscout-scraper",
		Short: "footscout ingestion CLI",
	}

	root.AddCommand(runCmd())
	root.AddCommand(backfillCmd())
	root.AddCommand(playersCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// run command
// --------------------------------------------------------------------------

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one sync job immediately, outside the cron schedule",
	}
	cmd.AddCommand(runKindCmd("stats", domain.JobSyncStats))
	cmd.AddCommand(runKindCmd("matchlogs", domain.JobSyncMatchlogs))
	cmd.AddCommand(runFullCmd())
	return cmd
}

func runKindCmd(use string, kind domain.JobKind) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: fmt.Sprintf("Run a %s sync against the full roster", use),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(func(ctx context.Context, cfg *config.Config, pool *store.Pool) error {
				notifier := notify.Multi{
					Senders: []notify.Sender{
						notify.NewSMTPSender(cfg.SMTPHost, fmt.Sprint(cfg.SMTPPort), cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom, cfg.SMTPTo, logger),
						notify.NewWebhookSender(cfg.WebhookURL, logger),
					},
					Logger: logger,
				}

				sched, err := scheduler.New(cfg, pool, notifier, logger)
				if err != nil {
					return fmt.Errorf("build scheduler: %w", err)
				}

				start := time.Now()
				report := sched.RunNow(ctx, kind)
				logger.Info("run finished", "kind", kind, "duration", time.Since(start).Round(time.Second), "summary", report.Summary())
				for _, f := range report.Failures {
					logger.Error("player sync failed", "player_id", f.Player.ID, "player_name", f.Player.Name, "reason", f.Reason)
				}
				return nil
			})
		},
	}
}

// runFullCmd reconciles every tracked player's full multi-season history,
// rather than just the current season — for backfilling a newly added
// player or repairing drift after an extended outage.
func runFullCmd() *cobra.Command {
	var seasonsBack int
	cmd := &cobra.Command{
		Use:   "full",
		Short: "Run a full multi-season reconciliation against the full roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(func(ctx context.Context, cfg *config.Config, pool *store.Pool) error {
				notifier := notify.Multi{
					Senders: []notify.Sender{
						notify.NewSMTPSender(cfg.SMTPHost, fmt.Sprint(cfg.SMTPPort), cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom, cfg.SMTPTo, logger),
						notify.NewWebhookSender(cfg.WebhookURL, logger),
					},
					Logger: logger,
				}

				sched, err := scheduler.New(cfg, pool, notifier, logger)
				if err != nil {
					return fmt.Errorf("build scheduler: %w", err)
				}

				if seasonsBack <= 0 {
					seasonsBack = cfg.FullSyncSeasonsBack
				}

				start := time.Now()
				report := sched.RunFull(ctx, seasonsBack)
				logger.Info("full run finished", "seasons_back", seasonsBack, "duration", time.Since(start).Round(time.Second), "summary", report.Summary())
				for _, f := range report.Failures {
					logger.Error("player sync failed", "player_id", f.Player.ID, "player_name", f.Player.Name, "reason", f.Reason)
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&seasonsBack, "seasons", 0, "Number of seasons back to reconcile (defaults to FULL_SYNC_SEASONS_BACK)")
	return cmd
}

// --------------------------------------------------------------------------
// backfill command
// --------------------------------------------------------------------------

func backfillCmd() *cobra.Command {
	var playerID int
	cmd := &cobra.Command{
		Use:   "backfill",
		Short: "Re-run the minutes backfill for one player",
		RunE: func(cmd *cobra.Command, args []string) error {
			if playerID == 0 {
				return fmt.Errorf("--player is required")
			}
			return withSession(func(ctx context.Context, cfg *config.Config, pool *store.Pool) error {
				player, err := store.PlayerByID(ctx, pool, playerID)
				if err != nil {
					return fmt.Errorf("look up player %d: %w", playerID, err)
				}

				n, err := store.RunBackfill(ctx, pool, player)
				if err != nil {
					return fmt.Errorf("backfill: %w", err)
				}
				logger.Info("backfill finished", "player_id", playerID, "rows_updated", n)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&playerID, "player", 0, "Player ID to backfill")
	return cmd
}

// --------------------------------------------------------------------------
// players command
// --------------------------------------------------------------------------

func playersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "players",
		Short: "Manage the tracked roster",
	}
	cmd.AddCommand(playersAddCmd())
	return cmd
}

func playersAddCmd() *cobra.Command {
	var name, team, league, position, nationality string
	var isGoalkeeper bool
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new player to track",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name is required")
			}
			return withSession(func(ctx context.Context, cfg *config.Config, pool *store.Pool) error {
				player, err := store.AddPlayer(ctx, pool, name, team, league, position, nationality, isGoalkeeper)
				if err != nil {
					return fmt.Errorf("add player: %w", err)
				}
				logger.Info("player added", "id", player.ID, "name", player.Name)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Player's full name (required)")
	cmd.Flags().StringVar(&team, "team", "", "Current club")
	cmd.Flags().StringVar(&league, "league", "", "Current league")
	cmd.Flags().StringVar(&position, "position", "", "Playing position")
	cmd.Flags().StringVar(&nationality, "nationality", "", "Nationality")
	cmd.Flags().BoolVar(&isGoalkeeper, "goalkeeper", false, "Whether the player is a goalkeeper")
	return cmd
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// withSession handles config loading, DB connection, and signal-based
// context cancellation, matching a standard cobra setup-and-teardown helper.
func withSession(fn func(ctx context.Context, cfg *config.Config, pool *store.Pool) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	pool, err := store.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	return fn(ctx, cfg, pool)
}
