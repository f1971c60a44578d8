package prefixcode

// CountWeights counts the runes of text and returns them, in order of first
// appearance, with their relative frequencies.  The result passes Validate.
func CountWeights(text string) ([]rune, []float64) {
	var symbols []rune
	counts := make(map[rune]int)
	var total int
	for _, ch := range text {
		if counts[ch] == 0 {
			symbols = append(symbols, ch)
		}
		counts[ch]++
		total++
	}

	weights := make([]float64, len(symbols))
	for i, ch := range symbols {
		weights[i] = float64(counts[ch]) / float64(total)
	}
	return symbols, weights
}
