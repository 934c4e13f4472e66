package models

type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
	SideHold Side = "HOLD"
)

// Decision is produced once per tick and never stored.
type Decision struct {
	Action Side
	Score  float64
}

// OrderResult — structured outcome of a simulated order. Rejections come
// back as Reason codes, not errors.
type OrderResult struct {
	Success   bool
	Reason    string
	ProfitPct float64
}
