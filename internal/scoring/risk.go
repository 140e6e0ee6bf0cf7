package scoring

import "StockSentinel/internal/model"

// RiskConfig holds the ATR multipliers the risk envelope is derived from.
type RiskConfig struct {
	RiskMultiplier       float64
	RewardMultiplier     float64
	TrailingMultiplier   float64
	ActivationMultiplier float64
}

// DefaultRiskConfig returns the standard multipliers.
func DefaultRiskConfig() RiskConfig {
	return RiskConfig{
		RiskMultiplier:       1.5,
		RewardMultiplier:     2.0,
		TrailingMultiplier:   1.2,
		ActivationMultiplier: 0.5,
	}
}

// Envelope derives stop-loss, take-profit and trailing levels from the
// latest close and ATR. Direction is -1 for SELL, +1 otherwise; HOLD
// decisions still get an envelope with the long bias, it just is not
// actionable downstream.
func Envelope(close, atr float64, decision model.Decision, rc RiskConfig) model.RiskEnvelope {
	direction := 1.0
	if decision == model.DecisionSell {
		direction = -1.0
	}

	risk := atr * rc.RiskMultiplier
	reward := risk * rc.RewardMultiplier

	stopLoss := close - risk*direction
	takeProfit := close + reward*direction
	trailingCandidate := close - rc.TrailingMultiplier*atr*direction

	trailingStop := trailingCandidate
	if direction > 0 {
		if stopLoss < trailingCandidate {
			trailingStop = stopLoss
		}
	} else {
		if stopLoss > trailingCandidate {
			trailingStop = stopLoss
		}
	}

	return model.RiskEnvelope{
		StopLoss:      stopLoss,
		TakeProfit:    takeProfit,
		TrailingStop:  trailingStop,
		TrailingStart: close + rc.ActivationMultiplier*atr*direction,
	}
}
