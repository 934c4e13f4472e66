package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"paper_trader/internal/config"
	"paper_trader/internal/executor"
	"paper_trader/internal/health"
	"paper_trader/internal/market"
	"paper_trader/internal/news"
	"paper_trader/internal/notify"
	"paper_trader/internal/runner"
	"paper_trader/internal/strategy"
	"paper_trader/pkg/logger"
	"paper_trader/pkg/tracing"

	"go.uber.org/fx"
)

func main() {
	if err := logger.Init(); err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	app := fx.New(
		fx.Provide(
			func() context.Context {
				return context.Background()
			},
			config.Load,
			func(cfg *config.Config) *market.Client {
				return market.NewClient(cfg.BaseURL)
			},
			func(cfg *config.Config) *news.Service {
				return news.NewService(news.NewClient(cfg.NewsAPIKey))
			},
			func(cfg *config.Config) *strategy.Engine {
				return strategy.NewEngine(cfg.RSIPeriod)
			},
			// Notifier: without TELEGRAM_* everything goes to the local log
			func(cfg *config.Config) notify.Notifier {
				if cfg.TelegramBotToken != "" && cfg.TelegramChatID != 0 {
					tg, err := notify.NewTelegram(cfg.TelegramBotToken, cfg.TelegramChatID)
					if err == nil {
						return tg
					}
					logger.Error("telegram init failed, falling back to log: %v", err)
				}
				return notify.NewStdout()
			},
			func(cfg *config.Config, n notify.Notifier) *executor.Simulator {
				return executor.NewSimulator(cfg.StartBalance, n)
			},
			// interface adapters for the runner
			func(c *market.Client) runner.PriceSource { return c },
			func(s *news.Service) runner.NewsSource { return s },
			func(s *executor.Simulator) runner.Executor { return s },
			runner.New,
		),
		health.Module(),
		fx.Invoke(
			func(lc fx.Lifecycle, cfg *config.Config) error {
				if !(tracing.Config{Host: cfg.JaegerHost}).Enabled() {
					return nil
				}
				_, closeTracer, err := tracing.InitTracer("paper-trader", tracing.Config{
					Host: cfg.JaegerHost,
					Port: cfg.JaegerPort,
				})
				if err != nil {
					return err
				}
				lc.Append(fx.Hook{
					OnStop: func(context.Context) error {
						closeTracer()
						return nil
					},
				})
				return nil
			},
			func(
				lc fx.Lifecycle,
				appCtx context.Context,
				cfg *config.Config,
				r *runner.Runner,
				n notify.Notifier,
				sim *executor.Simulator,
				state *health.State,
			) {
				lc.Append(fx.Hook{
					OnStart: func(ctx context.Context) error {
						if tg, ok := n.(*notify.Telegram); ok {
							tg.SetStatus(func() string { return statusText(sim, state) })
							tg.Start(appCtx)
						}
						logger.Info("starting paper trader: symbol=%s interval=%dm balance=%.2f",
							cfg.Symbol, cfg.IntervalMinutes, cfg.StartBalance)
						go r.Start(appCtx)
						return nil
					},
					OnStop: func(ctx context.Context) error {
						if tg, ok := n.(*notify.Telegram); ok {
							tg.Stop()
						}
						logger.Info("stopping...")
						return nil
					},
				})
			},
		),
	)
	app.Run()
}

func statusText(sim *executor.Simulator, state *health.State) string {
	acct := sim.Snapshot()

	var b strings.Builder
	fmt.Fprintf(&b, "💼 Balance: $%.4f\n", acct.Balance)
	if len(acct.Positions) == 0 {
		b.WriteString("📭 No open positions\n")
	} else {
		b.WriteString("📊 Open positions:\n")
		for _, p := range acct.Positions {
			fmt.Fprintf(&b, "- %s qty=%.8f @ %.2f\n", p.Symbol, p.Qty, p.Entry)
		}
	}
	if px := state.LastPrice(); px > 0 {
		fmt.Fprintf(&b, "Last price: %.2f", px)
	}
	return b.String()
}
