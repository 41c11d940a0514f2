package bench

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Two-tailed z-value of the given confidence, in percent
func zValue(confidence float64) float64 {
	dist := distuv.Normal{
		Mu:    0,
		Sigma: 1,
	}
	return dist.Quantile((1 + confidence/100) / 2)
}

// Player 1 points per game and the half width of its confidence interval
func scoreRate(p1Wins, draws, total int, confidence float64) (score, margin float64) {
	if total == 0 {
		return 0, 0
	}

	n := float64(total)
	score = (float64(p1Wins) + float64(draws)/2) / n
	margin = zValue(confidence) * math.Sqrt(score*(1-score)/n)
	return score, margin
}
