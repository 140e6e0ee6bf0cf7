package model

// Decision is the trading recommendation for a symbol.
type Decision string

const (
	DecisionBuy  Decision = "BUY"
	DecisionSell Decision = "SELL"
	DecisionHold Decision = "HOLD"
)

// Opinion is the output of the scoring engine: a decision plus the raw
// accumulator scores that produced it.
type Opinion struct {
	Decision  Decision
	Score     float64 // winning side's score, or max(buy, sell) for HOLD
	BuyScore  float64
	SellScore float64
}

// PatternResult lists detected chart patterns in evaluation order with
// their combined weighted score.
type PatternResult struct {
	Score    float64
	Patterns []string
}

// RiskEnvelope holds the price levels derived from ATR for a decision.
type RiskEnvelope struct {
	StopLoss      float64
	TakeProfit    float64
	TrailingStop  float64
	TrailingStart float64
}

// Confidence is the discrete tier derived from the calibrated probabilities.
type Confidence string

const (
	ConfidenceLow      Confidence = "low"
	ConfidenceMedium   Confidence = "medium"
	ConfidenceHigh     Confidence = "high"
	ConfidenceVeryHigh Confidence = "very-high"
)

// ProbabilityResult holds calibrated 0-100 probabilities for each decision.
// The three values sum to ~100 after normalization.
type ProbabilityResult struct {
	BuyProbability  float64
	SellProbability float64
	HoldProbability float64
	Confidence      Confidence
}
