package models

// Position — a simulated holding. Entry is the fill price at open.
type Position struct {
	Symbol string
	Qty    float64
	Entry  float64
}

// Account is the paper account: the free balance plus all open positions.
// A Snapshot copy of it is what policy code gets to look at.
type Account struct {
	Balance   float64
	Positions []Position
}

// HasPosition reports whether any open position matches symbol.
func (a Account) HasPosition(symbol string) bool {
	for _, p := range a.Positions {
		if p.Symbol == symbol {
			return true
		}
	}
	return false
}

// FirstPosition returns the first open position for symbol. Several
// positions per symbol may coexist; callers always act on the first one.
func (a Account) FirstPosition(symbol string) (Position, bool) {
	for _, p := range a.Positions {
		if p.Symbol == symbol {
			return p, true
		}
	}
	return Position{}, false
}
