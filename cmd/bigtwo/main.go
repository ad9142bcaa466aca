package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bigtwo/internal/app"
	"bigtwo/internal/bot"
	"bigtwo/internal/config"
	"bigtwo/internal/logging"
	"bigtwo/internal/ports"
	"bigtwo/internal/ports/console"
	"bigtwo/internal/ports/transcript"

	"github.com/heroiclabs/nakama-common/runtime"
)

func main() {
	var configPath string
	var seed int64
	flag.StringVar(&configPath, "config", "", "Path to a YAML config file (defaults and BIGTWO_* env when empty)")
	flag.Int64Var(&seed, "seed", 0, "Random seed, overrides game.seed (0 = use config)")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bigtwo: %v\n", err)
		os.Exit(1)
	}
	if seed != 0 {
		cfg.Game.Seed = seed
	}

	logger := logging.New(os.Stderr, logging.Format(cfg.Log.Format), logging.ParseLevel(cfg.Log.Level))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("main: Game aborted: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger runtime.Logger) error {
	if cfg.Game.Seed == 0 {
		cfg.Game.Seed = time.Now().UnixNano()
	}
	logger.Debug("run: Using seed %d.", cfg.Game.Seed)

	identities, err := bot.LoadIdentities(cfg.Bots.Identities)
	if err != nil {
		logger.Warn("run: Falling back to default AI names: %v", err)
		identities, _ = bot.LoadIdentities("")
	}

	term := console.NewTerminal(os.Stdin, os.Stdout, cfg.Input.Timeout)
	seats, local, err := buildSeats(cfg.Game.Players, term, identities, logger)
	if err != nil {
		return err
	}

	reporters := app.MultiReporter{console.NewReporter(os.Stdout, local...)}
	if cfg.Transcript.Path != "" {
		tw, err := transcript.Create(cfg.Transcript.Path, logger)
		if err != nil {
			return err
		}
		defer tw.Close()
		reporters = append(reporters, tw)
	}

	svc := app.NewService(rand.New(rand.NewSource(cfg.Game.Seed)), logger)
	game := svc.NewGame(reporters)
	if err := game.AddPlayers(seats...); err != nil {
		return err
	}

	res, err := game.Run(ctx)
	if err != nil {
		return err
	}
	logger.Info("run: Game %s finished, %s won in %d turns.", res.GameID, res.Winner, res.Turns)
	return nil
}

// buildSeats returns the seat ports in order and the seat indices played at
// this terminal.
func buildSeats(players []config.PlayerConfig, term *console.Terminal, identities *bot.Identities, logger runtime.Logger) ([]ports.SeatPort, []int, error) {
	seats := make([]ports.SeatPort, 0, len(players))
	var local []int
	for i, p := range players {
		switch p.Kind {
		case config.KindHuman:
			seats = append(seats, console.NewHuman(term, p.Name, fmt.Sprintf("Player %d", i)))
			local = append(local, i)
		case config.KindAI:
			level, err := bot.ParseLevel(p.Level)
			if err != nil {
				return nil, nil, err
			}
			name := p.Name
			if name == "" {
				name = identities.GetBotIdentity(i).DisplayName
			}
			agent, err := bot.NewAgent(name, level, logger.WithField("seat", i))
			if err != nil {
				return nil, nil, err
			}
			seats = append(seats, agent)
		default:
			return nil, nil, fmt.Errorf("seat %d: unknown kind %q", i, p.Kind)
		}
	}
	return seats, local, nil
}
