// Package pattern detects bullish chart patterns over trailing price
// windows. Detection order is fixed and part of the contract: the names
// slice always lists patterns in the order AscendingTriangle, BullishFlag,
// DoubleBottom, FallingWedge, IslandReversal.
package pattern

import (
	"math"

	"StockSentinel/internal/model"
	"StockSentinel/internal/params"
)

// isAscendingTriangle checks the last 5 bars for a flat top (highs within
// 1%) and non-decreasing lows.
func isAscendingTriangle(highs, lows []float64) bool {
	if len(highs) < 5 || len(lows) < 5 {
		return false
	}
	h := highs[len(highs)-5:]
	l := lows[len(lows)-5:]

	maxHigh, minHigh := h[0], h[0]
	for _, v := range h[1:] {
		if v > maxHigh {
			maxHigh = v
		}
		if v < minHigh {
			minHigh = v
		}
	}
	flatTop := (maxHigh-minHigh)/maxHigh < 0.01

	for i := 1; i < len(l); i++ {
		if l[i] < l[i-1] {
			return false
		}
	}
	return flatTop
}

// isBullishFlag checks the last 10 closes for a >=5% rise from the window
// start to the window max inside a <=5% total range.
func isBullishFlag(closes []float64) bool {
	if len(closes) < 10 {
		return false
	}
	c := closes[len(closes)-10:]
	first := c[0]
	max, min := c[0], c[0]
	for _, v := range c[1:] {
		if v > max {
			max = v
		}
		if v < min {
			min = v
		}
	}
	strongUp := (max-first)/first > 0.05
	tightRange := (max-min)/max < 0.05
	return strongUp && tightRange
}

// isDoubleBottom checks the last 20 lows for two minima (first half vs
// second half) within 2% of each other.
func isDoubleBottom(lows []float64) bool {
	if len(lows) < 20 {
		return false
	}
	l := lows[len(lows)-20:]
	firstMin, secondMin := l[0], l[10]
	for _, v := range l[1:10] {
		if v < firstMin {
			firstMin = v
		}
	}
	for _, v := range l[11:] {
		if v < secondMin {
			secondMin = v
		}
	}
	diff := math.Abs(firstMin-secondMin) / ((firstMin + secondMin) / 2)
	return diff < 0.02
}

// isFallingWedge checks the last 6 bars for strictly decreasing highs and
// lows with the highs falling faster than the lows (narrowing range).
func isFallingWedge(highs, lows []float64) bool {
	if len(highs) < 6 || len(lows) < 6 {
		return false
	}
	h := highs[len(highs)-6:]
	l := lows[len(lows)-6:]
	for i := 1; i < 6; i++ {
		if h[i] >= h[i-1] || l[i] >= l[i-1] {
			return false
		}
	}
	highSlope := h[0] - h[5]
	lowSlope := l[0] - l[5]
	return highSlope > lowSlope
}

// isIslandReversal checks the last 5 closes for a >=5% gap down followed
// by a >=5% gap up.
func isIslandReversal(closes []float64) bool {
	if len(closes) < 5 {
		return false
	}
	c := closes[len(closes)-5:]
	gapDown := c[1] < c[0]*0.95
	gapUp := c[3] > c[2]*1.05
	return gapDown && gapUp
}

// Detect runs all five detectors against the trailing windows of the
// given price columns. Each detector with insufficient history simply
// reports false; partial results are fine on short series.
func Detect(highs, lows, closes []float64, weights params.PatternWeights) model.PatternResult {
	var result model.PatternResult

	if isAscendingTriangle(highs, lows) {
		result.Score += weights.AscendingTriangle
		result.Patterns = append(result.Patterns, "AscendingTriangle")
	}
	if isBullishFlag(closes) {
		result.Score += weights.BullishFlag
		result.Patterns = append(result.Patterns, "BullishFlag")
	}
	if isDoubleBottom(lows) {
		result.Score += weights.DoubleBottom
		result.Patterns = append(result.Patterns, "DoubleBottom")
	}
	if isFallingWedge(highs, lows) {
		result.Score += weights.FallingWedge
		result.Patterns = append(result.Patterns, "FallingWedge")
	}
	if isIslandReversal(closes) {
		result.Score += weights.IslandReversal
		result.Patterns = append(result.Patterns, "IslandReversal")
	}

	return result
}
