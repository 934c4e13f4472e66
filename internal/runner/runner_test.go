package runner

import (
	"context"
	"errors"
	"testing"

	"paper_trader/internal/config"
	"paper_trader/internal/health"
	"paper_trader/internal/models"
	"paper_trader/internal/strategy"
	"paper_trader/pkg/logger"
)

type stubMarket struct {
	price float64
	err   error
}

func (s *stubMarket) Ticker(ctx context.Context, symbol string) (float64, error) {
	return s.price, s.err
}

type stubNews struct {
	score models.NewsScore
}

func (s *stubNews) Score(ctx context.Context, query string) models.NewsScore {
	return s.score
}

type placedOrder struct {
	side  models.Side
	qty   float64
	price float64
}

type stubExec struct {
	acct   models.Account
	result models.OrderResult
	orders []placedOrder
}

func (s *stubExec) PlaceOrder(side models.Side, symbol string, qty, price float64) models.OrderResult {
	s.orders = append(s.orders, placedOrder{side: side, qty: qty, price: price})
	return s.result
}

func (s *stubExec) Snapshot() models.Account { return s.acct }

func newTestRunner(t *testing.T, mkt *stubMarket, news *stubNews, exec *stubExec) *Runner {
	t.Helper()
	if err := logger.Init(); err != nil {
		t.Fatalf("logger init: %v", err)
	}
	cfg := &config.Config{
		Symbol:          "BTCUSDT",
		IntervalMinutes: 1,
		MinOrderUSDT:    5,
		HistoryCap:      500,
		RSIPeriod:       14,
		NewsQuery:       "bitcoin",
	}
	return New(cfg, mkt, news, strategy.NewEngine(cfg.RSIPeriod), exec, health.NewState())
}

func TestTickPlacesBuy(t *testing.T) {
	exec := &stubExec{
		acct:   models.Account{Balance: 10},
		result: models.OrderResult{Success: true},
	}
	r := newTestRunner(t,
		&stubMarket{price: 100},
		&stubNews{score: models.NewsScore{Score: 0.9, Impact: 0.9}},
		exec,
	)

	r.Tick(context.Background())

	if len(exec.orders) != 1 {
		t.Fatalf("expected one order, got %d", len(exec.orders))
	}
	order := exec.orders[0]
	if order.side != models.SideBuy {
		t.Fatalf("expected BUY, got %s", order.side)
	}
	// allocation = max(5, 0.3*10) = 5 => qty = 0.05
	if order.qty != 0.05 || order.price != 100 {
		t.Fatalf("unexpected order %+v", order)
	}
}

func TestTickSkipsBuyWithOpenPosition(t *testing.T) {
	exec := &stubExec{
		acct: models.Account{
			Balance:   10,
			Positions: []models.Position{{Symbol: "BTCUSDT", Qty: 0.05, Entry: 90}},
		},
		result: models.OrderResult{Success: true},
	}
	r := newTestRunner(t,
		&stubMarket{price: 100},
		&stubNews{score: models.NewsScore{Score: 0.9, Impact: 0.9}},
		exec,
	)

	r.Tick(context.Background())

	if len(exec.orders) != 0 {
		t.Fatalf("expected no order with an open position, got %v", exec.orders)
	}
}

func TestTickSellsFullPosition(t *testing.T) {
	exec := &stubExec{
		acct: models.Account{
			Balance:   5,
			Positions: []models.Position{{Symbol: "BTCUSDT", Qty: 0.07, Entry: 90}},
		},
		result: models.OrderResult{Success: true, ProfitPct: 11.1},
	}
	r := newTestRunner(t,
		&stubMarket{price: 100},
		&stubNews{score: models.NewsScore{Score: -0.9, Impact: 0.9}},
		exec,
	)

	r.Tick(context.Background())

	if len(exec.orders) != 1 {
		t.Fatalf("expected one order, got %d", len(exec.orders))
	}
	order := exec.orders[0]
	if order.side != models.SideSell || order.qty != 0.07 {
		t.Fatalf("expected SELL of full position, got %+v", order)
	}
}

func TestTickSkipsSellWithoutPosition(t *testing.T) {
	exec := &stubExec{
		acct:   models.Account{Balance: 10},
		result: models.OrderResult{Success: true},
	}
	r := newTestRunner(t,
		&stubMarket{price: 100},
		&stubNews{score: models.NewsScore{Score: -0.9, Impact: 0.9}},
		exec,
	)

	r.Tick(context.Background())

	if len(exec.orders) != 0 {
		t.Fatalf("expected no order without a position, got %v", exec.orders)
	}
}

func TestTickFetchErrorSkipsCycle(t *testing.T) {
	exec := &stubExec{acct: models.Account{Balance: 10}}
	r := newTestRunner(t,
		&stubMarket{err: errors.New("connection refused")},
		&stubNews{score: models.NewsScore{Score: 0.9, Impact: 0.9}},
		exec,
	)

	r.Tick(context.Background())

	if len(exec.orders) != 0 {
		t.Fatalf("expected no orders on fetch failure, got %v", exec.orders)
	}
	if r.hist.Len() != 0 {
		t.Fatalf("expected history untouched on fetch failure, got %d", r.hist.Len())
	}
}

func TestTickAccumulatesHistory(t *testing.T) {
	exec := &stubExec{acct: models.Account{Balance: 10}}
	mkt := &stubMarket{price: 100}
	r := newTestRunner(t, mkt, &stubNews{}, exec)

	r.Tick(context.Background())
	mkt.price = 101
	r.Tick(context.Background())

	got := r.hist.Values()
	if len(got) != 2 || got[0] != 100 || got[1] != 101 {
		t.Fatalf("expected history [100 101], got %v", got)
	}
}

func TestTickHoldPlacesNothing(t *testing.T) {
	exec := &stubExec{acct: models.Account{Balance: 10}}
	r := newTestRunner(t, &stubMarket{price: 100}, &stubNews{}, exec)

	r.Tick(context.Background())

	if len(exec.orders) != 0 {
		t.Fatalf("expected no orders on HOLD, got %v", exec.orders)
	}
}
