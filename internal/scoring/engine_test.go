package scoring

import (
	"math"
	"testing"

	"StockSentinel/internal/model"
	"StockSentinel/internal/params"
)

func fptr(v float64) *float64 { return &v }

func TestDecide_OversoldBuy(t *testing.T) {
	in := Input{
		Snapshot: model.IndicatorSnapshot{
			RSI:           20,
			StochasticK:   10,
			BBLower:       105,
			BBUpper:       200,
			DonchLower:    100,
			DonchUpper:    200,
			WilliamsR:     -90,
			MACDHistogram: 1,
			SMA20:         90,
			EMA20:         90,
		},
		Close: 100,
	}
	op := Decide(in, params.Defaults())

	if op.Decision != model.DecisionBuy {
		t.Fatalf("expected BUY, got %s (buy=%.0f sell=%.0f)", op.Decision, op.BuyScore, op.SellScore)
	}
	// All nine buy conditions fire, including fearGreed via the absent
	// sentiment landing in the fearful band.
	want := 79.0 + 76 + 78 + 74 + 72 + 50 + 73 + 71 + 71
	if op.BuyScore != want {
		t.Errorf("expected buy score %.0f, got %.0f", want, op.BuyScore)
	}
	if op.SellScore != 0 {
		t.Errorf("no sell condition should fire, got %.0f", op.SellScore)
	}
	if op.Score != op.BuyScore {
		t.Errorf("score should be the winning side, got %.0f", op.Score)
	}
}

func TestDecide_OverboughtSell(t *testing.T) {
	in := Input{
		Snapshot: model.IndicatorSnapshot{
			RSI:           80,
			StochasticK:   90,
			BBLower:       80,
			BBUpper:       95,
			DonchLower:    80,
			DonchUpper:    98,
			WilliamsR:     -10,
			MACDHistogram: -1,
			SMA20:         110,
			EMA20:         110,
		},
		Close:     100,
		Sentiment: fptr(80),
	}
	op := Decide(in, params.Defaults())

	if op.Decision != model.DecisionSell {
		t.Fatalf("expected SELL, got %s (buy=%.0f sell=%.0f)", op.Decision, op.BuyScore, op.SellScore)
	}
	if op.BuyScore != 0 {
		t.Errorf("no buy condition should fire, got %.0f", op.BuyScore)
	}
}

func TestDecide_NeutralHold(t *testing.T) {
	in := Input{
		Snapshot: model.IndicatorSnapshot{
			RSI:         50,
			StochasticK: 50,
			BBLower:     90,
			BBUpper:     110,
			DonchLower:  90,
			DonchUpper:  110,
			WilliamsR:   -50,
			SMA20:       100,
			EMA20:       100,
		},
		Close:     100,
		Sentiment: fptr(50),
	}
	op := Decide(in, params.Defaults())

	if op.Decision != model.DecisionHold {
		t.Fatalf("expected HOLD, got %s", op.Decision)
	}
	if op.Score != 0 {
		t.Errorf("neutral inputs should score 0, got %.0f", op.Score)
	}
}

func TestDecide_TieFavorsBuy(t *testing.T) {
	p := params.Set{
		IndicatorWeights: params.IndicatorWeights{RSI: 200, SMA: 200},
		Thresholds:       params.Thresholds{Buy: 200, Sell: 200},
	}
	in := Input{
		Snapshot: model.IndicatorSnapshot{
			RSI:        80,  // fires the sell side
			SMA20:      90,  // close above fires the buy side
			BBUpper:    200, // keep the remaining sell conditions quiet
			DonchUpper: 200,
			WilliamsR:  -50,
		},
		Close:     100,
		Sentiment: fptr(50),
	}
	op := Decide(in, p)

	if op.BuyScore != op.SellScore {
		t.Fatalf("scenario should tie, got buy=%.0f sell=%.0f", op.BuyScore, op.SellScore)
	}
	if op.Decision != model.DecisionBuy {
		t.Errorf("exact tie should resolve to BUY, got %s", op.Decision)
	}
}

func TestDecide_PatternScoreFeedsBuySideOnly(t *testing.T) {
	neutral := model.IndicatorSnapshot{
		RSI: 50, StochasticK: 50,
		BBLower: 90, BBUpper: 110,
		DonchLower: 90, DonchUpper: 110,
		WilliamsR: -50, SMA20: 100, EMA20: 100,
	}
	p := params.Defaults()
	p.Thresholds = params.Thresholds{Buy: 50, Sell: 50}

	op := Decide(Input{Snapshot: neutral, Close: 100, PatternScore: 75, Sentiment: fptr(50)}, p)
	if op.Decision != model.DecisionBuy {
		t.Fatalf("pattern score alone should trigger BUY, got %s", op.Decision)
	}
	if op.SellScore != 0 {
		t.Errorf("pattern score must never reach the sell side, got %.0f", op.SellScore)
	}
}

func TestEnvelope_Long(t *testing.T) {
	env := Envelope(100, 2, model.DecisionBuy, DefaultRiskConfig())

	if env.StopLoss != 97 {
		t.Errorf("stop: want 97, got %.2f", env.StopLoss)
	}
	if env.TakeProfit != 106 {
		t.Errorf("target: want 106, got %.2f", env.TakeProfit)
	}
	// Stop 97 is tighter than the 1.2*ATR trailing candidate 97.6.
	if env.TrailingStop != 97 {
		t.Errorf("trailing stop: want 97, got %.2f", env.TrailingStop)
	}
	if env.TrailingStart != 101 {
		t.Errorf("trailing start: want 101, got %.2f", env.TrailingStart)
	}
}

func TestEnvelope_Short(t *testing.T) {
	env := Envelope(100, 2, model.DecisionSell, DefaultRiskConfig())

	if env.StopLoss != 103 {
		t.Errorf("stop: want 103, got %.2f", env.StopLoss)
	}
	if env.TakeProfit != 94 {
		t.Errorf("target: want 94, got %.2f", env.TakeProfit)
	}
	if env.TrailingStop != 103 {
		t.Errorf("trailing stop: want 103, got %.2f", env.TrailingStop)
	}
	if math.Abs(env.TrailingStart-99) > 1e-9 {
		t.Errorf("trailing start: want 99, got %.2f", env.TrailingStart)
	}
}

func TestEnvelope_HoldGetsLongBias(t *testing.T) {
	hold := Envelope(100, 2, model.DecisionHold, DefaultRiskConfig())
	long := Envelope(100, 2, model.DecisionBuy, DefaultRiskConfig())
	if hold != long {
		t.Errorf("HOLD should use the long direction: %+v vs %+v", hold, long)
	}
}
