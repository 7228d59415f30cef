package distance

// levenshtein is the unbounded core: a single reusable cost row, walked with
// running "left" and "above" costs so the row never needs a second pass.
func levenshtein(a, b []rune, lenA, lenB, start int, char1Costs []int) int {
	for j := 0; j < lenB; j++ {
		char1Costs[j] = j + 1
	}

	currentCost := 0
	for i := 0; i < lenA; i++ {
		leftCharCost := i
		aboveCharCost := i
		char1 := a[start+i]
		for j := 0; j < lenB; j++ {
			currentCost = leftCharCost
			leftCharCost = char1Costs[j]
			if char1 != b[start+j] {
				if aboveCharCost < currentCost {
					currentCost = aboveCharCost
				}
				if leftCharCost < currentCost {
					currentCost = leftCharCost
				}
				currentCost++
			}
			char1Costs[j] = currentCost
			aboveCharCost = currentCost
		}
	}
	return currentCost
}

// levenshteinBanded only explores the band of cells within maxDistance of
// the main diagonal, bailing out as soon as a row's diagonal-adjacent cell
// already exceeds maxDistance.
func levenshteinBanded(a, b []rune, lenA, lenB, start, maxDistance int, char1Costs []int) int {
	for j := 0; j < maxDistance && j < lenB; j++ {
		char1Costs[j] = j + 1
	}
	for j := maxDistance; j < lenB; j++ {
		char1Costs[j] = maxDistance + 1
	}

	lenDiff := lenB - lenA
	jStartOffset := maxDistance - lenDiff
	jStart := 0
	jEnd := maxDistance

	currentCost := 0
	for i := 0; i < lenA; i++ {
		leftCharCost := i
		aboveCharCost := i
		char1 := a[start+i]

		if i > jStartOffset {
			jStart++
		}
		if jEnd < lenB {
			jEnd++
		}

		for j := jStart; j < jEnd; j++ {
			currentCost = leftCharCost
			leftCharCost = char1Costs[j]
			if char1 != b[start+j] {
				if aboveCharCost < currentCost {
					currentCost = aboveCharCost
				}
				if leftCharCost < currentCost {
					currentCost = leftCharCost
				}
				currentCost++
			}
			char1Costs[j] = currentCost
			aboveCharCost = currentCost
		}

		if char1Costs[i+lenDiff] > maxDistance {
			return -1
		}
	}

	if currentCost <= maxDistance {
		return currentCost
	}
	return -1
}
