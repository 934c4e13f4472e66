package executor

import (
	"sync"

	"paper_trader/internal/models"
	"paper_trader/internal/notify"
)

// Rejection reasons returned in OrderResult.Reason.
const (
	ReasonInsufficientBalance = "insufficient_balance"
	ReasonNoPosition          = "no_position"
	ReasonUnknownSide         = "unknown_side"
)

// balanceEpsilon absorbs float noise when comparing cost against balance.
const balanceEpsilon = 1e-8

// Simulator fills orders immediately against an in-memory account. It is
// the only owner of the account state; everyone else sees copies. The
// balance can never go negative.
type Simulator struct {
	mu        sync.Mutex
	balance   float64
	positions []models.Position
	notifier  notify.Notifier
}

func NewSimulator(startBalance float64, notifier notify.Notifier) *Simulator {
	return &Simulator{
		balance:  startBalance,
		notifier: notifier,
	}
}

// Snapshot returns a copy of the account for policy decisions.
func (s *Simulator) Snapshot() models.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	positions := make([]models.Position, len(s.positions))
	copy(positions, s.positions)
	return models.Account{Balance: s.balance, Positions: positions}
}

// PlaceOrder simulates an immediate fill. BUY debits the balance and opens
// a position; SELL closes the first position matching symbol and reports
// realized profit. Rejections leave the account untouched.
func (s *Simulator) PlaceOrder(side models.Side, symbol string, qty, price float64) models.OrderResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch side {
	case models.SideBuy:
		cost := qty * price
		if cost > s.balance+balanceEpsilon {
			return models.OrderResult{Reason: ReasonInsufficientBalance}
		}
		s.balance -= cost
		s.positions = append(s.positions, models.Position{Symbol: symbol, Qty: qty, Entry: price})
		s.notifier.Sendf("📈 *BUY EXECUTED*\nSymbol: %s\nPrice: %.2f\nQty: %.8f\nBalance: $%.4f",
			symbol, price, qty, s.balance)
		return models.OrderResult{Success: true}

	case models.SideSell:
		idx := -1
		for i, p := range s.positions {
			if p.Symbol == symbol {
				idx = i
				break
			}
		}
		if idx < 0 {
			return models.OrderResult{Reason: ReasonNoPosition}
		}
		pos := s.positions[idx]
		proceeds := pos.Qty * price
		entryValue := pos.Entry * pos.Qty
		profitPct := (proceeds - entryValue) / entryValue * 100
		s.balance += proceeds
		s.positions = append(s.positions[:idx], s.positions[idx+1:]...)
		s.notifier.Sendf("💰 *SELL EXECUTED*\nSymbol: %s\nPrice: %.2f\nProfit: %.2f%%\nBalance: $%.4f",
			symbol, price, profitPct, s.balance)
		return models.OrderResult{Success: true, ProfitPct: profitPct}
	}

	return models.OrderResult{Reason: ReasonUnknownSide}
}
