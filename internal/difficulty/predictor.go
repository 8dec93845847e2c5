package difficulty

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	featureCount = 4
	// singular values below rcond*max(s) are treated as zero
	rankCond       = 1e-12
	defaultWinProb = 0.5
)

// Predictor is an ordinary least squares model with intercept over
// (level, speed, handling, acceleration) → won. It latches Trained once a
// fit succeeds and is never refitted.
type Predictor struct {
	coef      [featureCount]float64
	intercept float64
	trained   bool
	attempts  int
}

// Trained reports whether a fit has succeeded
func (p *Predictor) Trained() bool {
	return p.trained
}

// Attempts returns how many fits have been tried
func (p *Predictor) Attempts() int {
	return p.attempts
}

// Fit trains on records. Constant or collinear features are handled with
// the minimum-norm solution, so only non-finite inputs or a failed
// factorization return ErrTrainingFailed. A trained predictor is never
// refitted: Fit returns ErrAlreadyTrained and leaves the model unchanged.
func (p *Predictor) Fit(records []Record) error {
	if p.trained {
		return ErrAlreadyTrained
	}
	p.attempts++

	n := len(records)
	if n == 0 {
		return fmt.Errorf("%w: no records", ErrTrainingFailed)
	}

	var xMean [featureCount]float64
	yMean := 0.0
	for _, r := range records {
		for j, v := range r.features() {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: non-finite feature %d", ErrTrainingFailed, j)
			}
			xMean[j] += v
		}
		yMean += r.label()
	}
	for j := range xMean {
		xMean[j] /= float64(n)
	}
	yMean /= float64(n)

	// Center so the intercept drops out of the least squares problem
	x := mat.NewDense(n, featureCount, nil)
	y := mat.NewVecDense(n, nil)
	for i, r := range records {
		for j, v := range r.features() {
			x.Set(i, j, v-xMean[j])
		}
		y.SetVec(i, r.label()-yMean)
	}

	var coef [featureCount]float64

	var svd mat.SVD
	if !svd.Factorize(x, mat.SVDThin) {
		return fmt.Errorf("%w: svd did not converge", ErrTrainingFailed)
	}
	if rank := svd.Rank(rankCond); rank > 0 {
		var sol mat.VecDense
		svd.SolveVecTo(&sol, y, rank)
		for j := range coef {
			coef[j] = sol.AtVec(j)
		}
	}

	intercept := yMean
	for j := range coef {
		if math.IsNaN(coef[j]) || math.IsInf(coef[j], 0) {
			return fmt.Errorf("%w: non-finite coefficient %d", ErrTrainingFailed, j)
		}
		intercept -= coef[j] * xMean[j]
	}

	p.coef = coef
	p.intercept = intercept
	p.trained = true
	return nil
}

// Predict returns the win probability for the given level and car, clamped
// to [0, 1]. An untrained predictor returns 0.5.
func (p *Predictor) Predict(level int, car CarStats) float64 {
	if !p.trained {
		return defaultWinProb
	}

	features := [featureCount]float64{float64(level), car.Speed, car.Handling, car.Acceleration}
	v := p.intercept
	for j, f := range features {
		v += p.coef[j] * f
	}

	if math.IsNaN(v) {
		return defaultWinProb
	}
	return math.Max(0, math.Min(1, v))
}
