package strategy

import "paper_trader/internal/models"

const (
	weightIndicator = 0.4
	weightNews      = 0.6
	newsBoost       = 1.5 // applied when news impact is high
	impactHigh      = 0.7

	buyThreshold  = 0.6
	sellThreshold = -0.6

	oversold   = 30.0
	overbought = 70.0
)

// Engine combines the momentum oscillator with news sentiment into one
// signal. Evaluate is pure: same inputs, same decision.
type Engine struct {
	period int
}

func NewEngine(rsiPeriod int) *Engine {
	if rsiPeriod <= 0 {
		rsiPeriod = 14
	}
	return &Engine{period: rsiPeriod}
}

// Evaluate maps the weighted score to an action. The oscillator is read
// contrarian: oversold is bullish (+1), overbought bearish (-1), the band
// in between mapped linearly to roughly [-0.8, 0.8]. history already
// includes price as its most recent sample.
func (e *Engine) Evaluate(history []float64, price float64, news models.NewsScore) models.Decision {
	indicatorScore := 0.0
	if rsi, ok := RSI(history, e.period); ok {
		switch {
		case rsi < oversold:
			indicatorScore = 1
		case rsi > overbought:
			indicatorScore = -1
		default:
			indicatorScore = (50 - rsi) / 25
		}
	}

	wNews := weightNews
	if news.Impact > impactHigh {
		wNews *= newsBoost
	}

	final := weightIndicator*indicatorScore + wNews*news.Score

	switch {
	case final > buyThreshold:
		return models.Decision{Action: models.SideBuy, Score: final}
	case final < sellThreshold:
		return models.Decision{Action: models.SideSell, Score: final}
	default:
		return models.Decision{Action: models.SideHold, Score: final}
	}
}
