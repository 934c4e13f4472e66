package runner

import (
	"context"
	"math"
	"time"

	"paper_trader/internal/config"
	"paper_trader/internal/health"
	"paper_trader/internal/models"
	"paper_trader/internal/strategy"
	"paper_trader/pkg/logger"

	"github.com/opentracing/opentracing-go"
)

// balanceAllocationPct: share of the free balance committed per BUY.
const balanceAllocationPct = 0.3

type PriceSource interface {
	Ticker(ctx context.Context, symbol string) (float64, error)
}

type NewsSource interface {
	Score(ctx context.Context, query string) models.NewsScore
}

type Executor interface {
	PlaceOrder(side models.Side, symbol string, qty, price float64) models.OrderResult
	Snapshot() models.Account
}

// Runner drives the evaluation cycle: fetch price, update history, score
// news, decide, and maybe trade. One goroutine, ticks never overlap.
type Runner struct {
	cfg    *config.Config
	market PriceSource
	news   NewsSource
	engine *strategy.Engine
	exec   Executor
	hist   *History
	state  *health.State
}

func New(
	cfg *config.Config,
	market PriceSource,
	news NewsSource,
	engine *strategy.Engine,
	exec Executor,
	state *health.State,
) *Runner {
	return &Runner{
		cfg:    cfg,
		market: market,
		news:   news,
		engine: engine,
		exec:   exec,
		hist:   NewHistory(cfg.HistoryCap),
		state:  state,
	}
}

// Start runs one tick immediately, then one per configured interval until
// ctx is cancelled.
func (r *Runner) Start(ctx context.Context) {
	r.state.SetReady(true)
	r.Tick(ctx)

	ticker := time.NewTicker(time.Duration(r.cfg.IntervalMinutes) * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Tick(ctx)
		}
	}
}

// Tick runs a single evaluation cycle. Every failure mode is absorbed:
// a tick may be skipped but the loop must never die.
func (r *Runner) Tick(ctx context.Context) {
	defer func() {
		if p := recover(); p != nil {
			logger.Error("tick panic: %v", p)
		}
	}()

	span := opentracing.StartSpan("tick")
	defer span.Finish()
	ctx = opentracing.ContextWithSpan(ctx, span)

	price, err := r.market.Ticker(ctx, r.cfg.Symbol)
	if err != nil {
		logger.Error("tick skipped: %v", err)
		return
	}
	r.hist.Push(price)
	r.state.TouchTick(time.Now(), price)

	news := r.news.Score(ctx, r.cfg.NewsQuery)
	decision := r.engine.Evaluate(r.hist.Values(), price, news)
	logger.Info("tick symbol=%s price=%.4f action=%s score=%.4f news=%.4f impact=%.2f",
		r.cfg.Symbol, price, decision.Action, decision.Score, news.Score, news.Impact)
	span.SetTag("action", string(decision.Action))

	acct := r.exec.Snapshot()

	switch decision.Action {
	case models.SideBuy:
		if acct.HasPosition(r.cfg.Symbol) {
			return
		}
		allocation := math.Max(r.cfg.MinOrderUSDT, acct.Balance*balanceAllocationPct)
		qty := round8(allocation / price)
		if qty*price < r.cfg.MinOrderUSDT {
			return
		}
		if res := r.exec.PlaceOrder(models.SideBuy, r.cfg.Symbol, qty, price); !res.Success {
			logger.Info("buy rejected: %s", res.Reason)
		}

	case models.SideSell:
		pos, ok := acct.FirstPosition(r.cfg.Symbol)
		if !ok {
			return
		}
		if res := r.exec.PlaceOrder(models.SideSell, r.cfg.Symbol, pos.Qty, price); !res.Success {
			logger.Info("sell rejected: %s", res.Reason)
		}
	}
}

func round8(v float64) float64 {
	return math.Round(v*1e8) / 1e8
}
