package scheduler

import "math"

// model holds the 21 weights plus constants precomputed from them.
type model struct {
	w      [21]float64
	decay  float64 // -w[20]
	factor float64 // 0.9^(1/decay) - 1
}

func newModel(w [21]float64) model {
	decay := -w[20]
	factor := math.Pow(0.9, 1.0/decay) - 1.0
	return model{w: w, decay: decay, factor: factor}
}

// retrievability computes R(t, S) = (1 + factor * t / S) ^ decay.
func (m *model) retrievability(elapsedDays, stability float64) float64 {
	return math.Pow(1+m.factor*elapsedDays/stability, m.decay)
}

// initStability returns the initial stability S0(G) for the first review.
func (m *model) initStability(r Rating) float64 {
	return clampStability(m.w[r-1])
}

// initDifficulty returns the initial difficulty
// D0(G) = w[4] - e^(w[5] * (G - 1)) + 1, clamped to [1, 10] when clamp is set.
// The unclamped value is used as the mean-reversion target.
func (m *model) initDifficulty(r Rating, clamp bool) float64 {
	d := m.w[4] - math.Exp(m.w[5]*float64(r-1)) + 1
	if clamp {
		return clampDifficulty(d)
	}
	return d
}

// nextInterval converts stability into a review interval in days:
// I(r, S) = round((S / factor) * (r^(1/decay) - 1)), clamped to [1, maxDays].
func (m *model) nextInterval(stability, desiredRetention float64, maxDays int) int {
	ivl := stability / m.factor * (math.Pow(desiredRetention, 1.0/m.decay) - 1)
	days := int(math.Round(ivl))
	if days < 1 {
		days = 1
	}
	if days > maxDays {
		days = maxDays
	}
	return days
}

// shortTermStability handles same-day reviews, where no meaningful decay has
// happened yet:
// SInc = e^(w[17] * (G - 3 + w[18])) * S^(-w[19]), floored at 1 for Good/Easy.
func (m *model) shortTermStability(stability float64, r Rating) float64 {
	sInc := math.Exp(m.w[17]*(float64(r)-3+m.w[18])) * math.Pow(stability, -m.w[19])
	if r == RatingGood || r == RatingEasy {
		sInc = math.Max(sInc, 1.0)
	}
	return clampStability(stability * sInc)
}

// nextDifficulty applies the rating delta with linear damping and mean
// reversion toward D0(Easy), clamped to [1, 10].
func (m *model) nextDifficulty(difficulty float64, r Rating) float64 {
	deltaD := -m.w[6] * (float64(r) - 3)
	dPrime := difficulty + (10-difficulty)*deltaD/9
	d0Easy := m.initDifficulty(RatingEasy, false)
	return clampDifficulty(m.w[7]*d0Easy + (1-m.w[7])*dPrime)
}

// nextStability dispatches on recall success.
func (m *model) nextStability(d, s, r float64, rating Rating) float64 {
	if rating == RatingAgain {
		return m.forgetStability(d, s, r)
	}
	return m.recallStability(d, s, r, rating)
}

// recallStability rewards a successful recall; the gain is larger the lower
// the retrievability was at review time.
// S' = S * (1 + e^w[8] * (11-D) * S^(-w[9]) * (e^((1-R)*w[10]) - 1) * hardPenalty * easyBonus)
func (m *model) recallStability(d, s, r float64, rating Rating) float64 {
	hardPenalty := 1.0
	if rating == RatingHard {
		hardPenalty = m.w[15]
	}
	easyBonus := 1.0
	if rating == RatingEasy {
		easyBonus = m.w[16]
	}
	return s * (1 + math.Exp(m.w[8])*
		(11-d)*
		math.Pow(s, -m.w[9])*
		(math.Exp((1-r)*m.w[10])-1)*
		hardPenalty*easyBonus)
}

// forgetStability shrinks stability after a lapse:
// min(w[11] * D^(-w[12]) * ((S+1)^w[13] - 1) * e^((1-R)*w[14]), S / e^(w[17]*w[18]))
func (m *model) forgetStability(d, s, r float64) float64 {
	long := m.w[11] *
		math.Pow(d, -m.w[12]) *
		(math.Pow(s+1, m.w[13]) - 1) *
		math.Exp((1-r)*m.w[14])
	short := s / math.Exp(m.w[17]*m.w[18])
	return math.Min(long, short)
}

func clampStability(s float64) float64 {
	return math.Max(s, 0.001)
}

func clampDifficulty(d float64) float64 {
	return math.Min(math.Max(d, 1), 10)
}
