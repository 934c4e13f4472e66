package strategy

import "testing"

func TestRSIInsufficientHistory(t *testing.T) {
	values := make([]float64, 14) // need period+1
	for i := range values {
		values[i] = 100 + float64(i)
	}
	if _, ok := RSI(values, 14); ok {
		t.Fatalf("expected no RSI for %d samples with period 14", len(values))
	}
	if _, ok := RSI(nil, 14); ok {
		t.Fatalf("expected no RSI for empty history")
	}
}

func TestRSIMonotonicRiseIsOverbought(t *testing.T) {
	// 15 prices rising 100..114: all gains, no losses
	values := make([]float64, 15)
	for i := range values {
		values[i] = 100 + float64(i)
	}
	rsi, ok := RSI(values, 14)
	if !ok {
		t.Fatalf("expected RSI for 15 samples")
	}
	if rsi != 100 {
		t.Fatalf("expected RSI 100 for monotonic rise, got %v", rsi)
	}
}

func TestRSIMonotonicFallIsOversold(t *testing.T) {
	values := make([]float64, 15)
	for i := range values {
		values[i] = 200 - float64(i)
	}
	rsi, ok := RSI(values, 14)
	if !ok {
		t.Fatalf("expected RSI for 15 samples")
	}
	if rsi != 0 {
		t.Fatalf("expected RSI 0 for monotonic fall, got %v", rsi)
	}
}

func TestRSIBounded(t *testing.T) {
	values := []float64{100, 103, 99, 104, 98, 105, 97, 106, 96, 107, 95, 108, 94, 109, 93, 110}
	rsi, ok := RSI(values, 14)
	if !ok {
		t.Fatalf("expected RSI")
	}
	if rsi < 0 || rsi > 100 {
		t.Fatalf("RSI out of bounds: %v", rsi)
	}
}

func TestRSIBalancedMovesNearMidline(t *testing.T) {
	// alternating +1/-1 moves: equal gains and losses => RSI 50
	values := make([]float64, 15)
	values[0] = 100
	for i := 1; i < len(values); i++ {
		if i%2 == 1 {
			values[i] = values[i-1] + 1
		} else {
			values[i] = values[i-1] - 1
		}
	}
	rsi, ok := RSI(values, 14)
	if !ok {
		t.Fatalf("expected RSI")
	}
	if rsi != 50 {
		t.Fatalf("expected RSI 50 for balanced moves, got %v", rsi)
	}
}
