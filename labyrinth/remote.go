package labyrinth

import "sort"

// remoteLocationsIn picks the four most mutually distant nodes of a distance
// matrix: the 4-subset whose ascending-sorted vector of six pairwise
// distances is lexicographically largest. Every i<j<k<l combination is
// scored; only a strictly better score replaces the incumbent, so ties keep
// the earliest-enumerated combination. Exhaustive enumeration is C(n,4),
// acceptable for the node counts mazes are built at.
func remoteLocationsIn(dist [][]int) [4]int {
	count := len(dist)
	var best [4]int
	var bestScore []int

	for i := 0; i < count; i++ {
		for j := i + 1; j < count; j++ {
			for k := j + 1; k < count; k++ {
				for l := k + 1; l < count; l++ {
					score := spreadScore(dist, i, j, k, l)
					if bestScore == nil || lexGreater(score, bestScore) {
						best = [4]int{i, j, k, l}
						bestScore = score
					}
				}
			}
		}
	}
	return best
}

// spreadScore is the ascending-sorted list of the six pairwise distances
// inside one 4-subset.
func spreadScore(dist [][]int, i, j, k, l int) []int {
	score := []int{dist[i][j], dist[i][k], dist[i][l], dist[j][k], dist[j][l], dist[k][l]}
	sort.Ints(score)
	return score
}

// lexGreater reports whether a beats b at the first differing position.
func lexGreater(a, b []int) bool {
	for at := range a {
		if a[at] != b[at] {
			return a[at] > b[at]
		}
	}
	return false
}
