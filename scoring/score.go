package scoring

// Score computes the mean squared error between a predicted and an actual
// numeric vector. The reduction is a plain left-to-right sum followed by a
// single division, so recomputing over the same inputs reproduces the result
// bit for bit. NaN and Inf inputs propagate through the reduction untouched.
func Score(predicted []float64, actual []float64) (float64, error) {
	if len(predicted) != len(actual) || len(predicted) == 0 {
		return 0, ErrShapeMismatch
	}

	sum := 0.0
	for i := range predicted {
		diff := predicted[i] - actual[i]
		sum += diff * diff
	}

	return sum / float64(len(predicted)), nil
}
