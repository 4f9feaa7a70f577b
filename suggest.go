// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsec

import (
	"fmt"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance is the largest edit distance at which a candidate is
// suggested.
const maxSuggestDistance = 3

// closestStrings returns the candidates at the smallest edit distance from a,
// provided that distance is at most maxDistance. The result is sorted and
// holds no duplicates.
func closestStrings(maxDistance int, a string, candidates []string) []string {
	var closest []string
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(a, c)
		switch {
		case d < maxDistance:
			closest = []string{c}
			maxDistance = d
		case d == maxDistance:
			closest = append(closest, c)
		}
	}
	slices.Sort(closest)
	return slices.Compact(closest)
}

// suggest builds a "did you mean" message for word, or "" without a near miss.
func suggest(word string, candidates []string) string {
	closest := closestStrings(maxSuggestDistance, word, candidates)
	switch len(closest) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("did you mean %q?", closest[0])
	}
	quoted := make([]string, len(closest))
	for i, c := range closest {
		quoted[i] = fmt.Sprintf("%q", c)
	}
	return "did you mean any of " + strings.Join(quoted, ", ") + "?"
}
