package strategy

// Sma returns the arithmetic mean of the last `length` closes. The
// second return is false when the history is too short.
func Sma(closes []float64, length int) (float64, bool) {
	if length <= 0 || len(closes) < length {
		return 0.00, false
	}

	var sum float64
	for _, close := range closes[len(closes)-length:] {
		sum += close
	}

	return sum / float64(length), true
}

// RsiWilder returns the Wilder-smoothed RSI over the full close history,
// recomputed from scratch each call: no smoothing state survives between
// cycles, so a restart can never desynchronize the indicator from the
// true history. Requires length+1 closes. A history with zero cumulative
// average loss saturates at exactly 100.
func RsiWilder(closes []float64, length int) (float64, bool) {
	if length <= 0 || len(closes) < length+1 {
		return 0.00, false
	}

	var avgGain, avgLoss float64

	for i := 1; i <= length; i++ {
		delta := closes[i] - closes[i-1]
		if delta > 0 {
			avgGain += delta
		} else {
			avgLoss -= delta
		}
	}

	avgGain /= float64(length)
	avgLoss /= float64(length)

	for i := length + 1; i < len(closes); i++ {
		delta := closes[i] - closes[i-1]

		gain := 0.00
		loss := 0.00
		if delta > 0 {
			gain = delta
		} else {
			loss = -delta
		}

		avgGain = (avgGain*float64(length-1) + gain) / float64(length)
		avgLoss = (avgLoss*float64(length-1) + loss) / float64(length)
	}

	if avgLoss == 0.00 {
		return 100.00, true
	}

	return 100.00 - 100.00/(1.00+avgGain/avgLoss), true
}
