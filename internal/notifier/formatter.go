package notifier

import (
	"fmt"
	"strings"

	"StockSentinel/internal/analyze"
	"StockSentinel/internal/model"
)

// FormatReport renders one analysis result as a Slack message.
func FormatReport(r *analyze.Report) string {
	var b strings.Builder

	emoji := ":large_yellow_circle:"
	switch r.Opinion.Decision {
	case model.DecisionBuy:
		emoji = ":large_green_circle:"
	case model.DecisionSell:
		emoji = ":red_circle:"
	}

	fmt.Fprintf(&b, "%s *%s* %s | close %.2f | score %.0f (%s)\n",
		emoji, r.Ticker, r.Opinion.Decision, r.Close, r.Opinion.Score, r.Probabilities.Confidence)
	fmt.Fprintf(&b, "BUY %.1f%% / SELL %.1f%% / HOLD %.1f%%\n",
		r.Probabilities.BuyProbability, r.Probabilities.SellProbability, r.Probabilities.HoldProbability)
	fmt.Fprintf(&b, "RSI %.0f | %%K %.0f | W%%R %.0f | ATR %.2f\n",
		r.Snapshot.RSI, r.Snapshot.StochasticK, r.Snapshot.WilliamsR, r.Snapshot.ATR)

	if r.Opinion.Decision != model.DecisionHold {
		fmt.Fprintf(&b, "stop %.2f | target %.2f | trail %.2f (from %.2f)\n",
			r.Envelope.StopLoss, r.Envelope.TakeProfit, r.Envelope.TrailingStop, r.Envelope.TrailingStart)
	}
	if len(r.Patterns) > 0 {
		fmt.Fprintf(&b, "patterns: %s\n", strings.Join(r.Patterns, ", "))
	}
	return b.String()
}

// FormatAccuracy renders a learning-loop accuracy summary.
func FormatAccuracy(m model.AccuracyMetrics) string {
	return fmt.Sprintf(
		":bar_chart: *Prediction accuracy*\nhit rate %.1f%% (%d/%d matched, %d supplied)\nf1 %.3f",
		m.HitRate, m.CorrectPredictions, m.TotalPredictions, m.SuppliedCount, m.F1Score)
}
