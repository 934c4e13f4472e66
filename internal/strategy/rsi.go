package strategy

// RSI returns the relative-strength oscillator over the trailing period
// window, in [0,100]. ok is false until period+1 samples exist; values are
// expected oldest first.
func RSI(values []float64, period int) (float64, bool) {
	if period <= 0 || len(values) < period+1 {
		return 0, false
	}

	gain, loss := 0.0, 0.0
	for i := len(values) - period; i < len(values); i++ {
		d := values[i] - values[i-1]
		if d > 0 {
			gain += d
		} else {
			loss -= d
		}
	}
	if loss == 0 {
		return 100, true
	}

	rs := (gain / float64(period)) / (loss / float64(period))
	return 100 - 100/(1+rs), true
}
