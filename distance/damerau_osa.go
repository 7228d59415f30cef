package distance

// damerauOSA is the unbounded core. In addition to the current and previous
// row it remembers the previous row's diagonal cost (prevChar1Costs) to
// evaluate the transposition rule, and the previous two characters of each
// string to test it.
func damerauOSA(a, b []rune, lenA, lenB, start int, char1Costs, prevChar1Costs []int) int {
	for j := 0; j < lenB; j++ {
		char1Costs[j] = j + 1
	}

	var char1, prevChar1 rune
	currentCost := 0
	for i := 0; i < lenA; i++ {
		prevChar1 = char1
		char1 = a[start+i]
		var char2, prevChar2 rune
		leftCharCost := i
		aboveCharCost := i
		nextTransCost := 0

		for j := 0; j < lenB; j++ {
			thisTransCost := nextTransCost
			nextTransCost = prevChar1Costs[j]
			currentCost = leftCharCost
			prevChar1Costs[j] = currentCost
			leftCharCost = char1Costs[j]
			prevChar2 = char2
			char2 = b[start+j]

			if char1 != char2 {
				if aboveCharCost < currentCost {
					currentCost = aboveCharCost
				}
				if leftCharCost < currentCost {
					currentCost = leftCharCost
				}
				currentCost++
				if i != 0 && j != 0 && char1 == prevChar2 && prevChar1 == char2 && thisTransCost+1 < currentCost {
					currentCost = thisTransCost + 1
				}
			}
			char1Costs[j] = currentCost
			aboveCharCost = currentCost
		}
	}
	return currentCost
}

// damerauOSABanded is the banded, max-distance-bounded core: it only
// evaluates cells within maxDistance of the main diagonal and returns -1 as
// soon as a row proves the final distance must exceed maxDistance.
func damerauOSABanded(a, b []rune, lenA, lenB, start, maxDistance int, char1Costs, prevChar1Costs []int) int {
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

	var char1, prevChar1 rune
	currentCost := 0
	for i := 0; i < lenA; i++ {
		prevChar1 = char1
		char1 = a[start+i]
		var char2, prevChar2 rune
		leftCharCost := i
		aboveCharCost := i
		nextTransCost := 0

		if i > jStartOffset {
			jStart++
		}
		if jEnd < lenB {
			jEnd++
		}

		for j := jStart; j < jEnd; j++ {
			thisTransCost := nextTransCost
			nextTransCost = prevChar1Costs[j]
			currentCost = leftCharCost
			prevChar1Costs[j] = currentCost
			leftCharCost = char1Costs[j]
			prevChar2 = char2
			char2 = b[start+j]

			if char1 != char2 {
				if aboveCharCost < currentCost {
					currentCost = aboveCharCost
				}
				if leftCharCost < currentCost {
					currentCost = leftCharCost
				}
				currentCost++
				if i != 0 && j != 0 && char1 == prevChar2 && prevChar1 == char2 && thisTransCost+1 < currentCost {
					currentCost = thisTransCost + 1
				}
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
