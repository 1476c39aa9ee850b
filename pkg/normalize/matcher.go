package normalize

// sequenceRatio computes the Ratcliff/Obershelp similarity of two strings:
// twice the number of matching characters divided by the total length.
// Matching blocks are found recursively around the longest common
// substring, with ties resolved to the earliest positions so the score is
// stable.
func sequenceRatio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1.0
	}
	matched := matchingTotal(ra, rb, 0, len(ra), 0, len(rb))
	return 2.0 * float64(matched) / float64(total)
}

func matchingTotal(a, b []rune, alo, ahi, blo, bhi int) int {
	besti, bestj, size := longestMatch(a, b, alo, ahi, blo, bhi)
	if size == 0 {
		return 0
	}
	total := size
	total += matchingTotal(a, b, alo, besti, blo, bestj)
	total += matchingTotal(a, b, besti+size, ahi, bestj+size, bhi)
	return total
}

// longestMatch finds the longest common substring of a[alo:ahi] and
// b[blo:bhi], preferring the earliest start in a, then in b.
func longestMatch(a, b []rune, alo, ahi, blo, bhi int) (besti, bestj, bestSize int) {
	b2j := make(map[rune][]int, bhi-blo)
	for j := blo; j < bhi; j++ {
		b2j[b[j]] = append(b2j[b[j]], j)
	}

	besti, bestj = alo, blo
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		newJ2len := make(map[int]int)
		for _, j := range b2j[a[i]] {
			k := j2len[j-1] + 1
			newJ2len[j] = k
			if k > bestSize {
				besti = i - k + 1
				bestj = j - k + 1
				bestSize = k
			}
		}
		j2len = newJ2len
	}
	return besti, bestj, bestSize
}
