package outline

import "fmt"

// Drift is a structural difference between two outlines. Before is nil when
// the block only exists afterwards, After is nil when the block was lost, and
// both are set when a block changed kind or level.
type Drift struct {
	Before *Block
	After  *Block
}

// String describes the drift in one phrase.
func (d Drift) String() string {
	switch {
	case d.Before != nil && d.After != nil:
		return fmt.Sprintf("%s%s became %s", d.Before, d.Before.location(), d.After)
	case d.Before != nil:
		return fmt.Sprintf("%s%s disappeared", d.Before, d.Before.location())
	case d.After != nil:
		return fmt.Sprintf("new %s%s", d.After, d.After.location())
	default:
		return ""
	}
}

// Compare aligns two outlines on their longest common subsequence of
// kind and level and reports every block outside it. A removal directly
// followed by an addition is reported as a single changed block.
func Compare(before, after []Block) []Drift {
	keys := func(blocks []Block) []string {
		out := make([]string, len(blocks))
		for idx, b := range blocks {
			out[idx] = b.String()
		}
		return out
	}
	bk, ak := keys(before), keys(after)

	// dp[i][j] is the LCS length of bk[i:] and ak[j:].
	dp := make([][]int, len(bk)+1)
	for idx := range dp {
		dp[idx] = make([]int, len(ak)+1)
	}
	for i := len(bk) - 1; i >= 0; i-- {
		for j := len(ak) - 1; j >= 0; j-- {
			if bk[i] == ak[j] {
				dp[i][j] = dp[i+1][j+1] + 1
			} else {
				dp[i][j] = max(dp[i+1][j], dp[i][j+1])
			}
		}
	}

	var drifts []Drift
	var removed, added []*Block

	flush := func() {
		paired := min(len(removed), len(added))
		for idx := range paired {
			drifts = append(drifts, Drift{Before: removed[idx], After: added[idx]})
		}
		for _, b := range removed[paired:] {
			drifts = append(drifts, Drift{Before: b})
		}
		for _, b := range added[paired:] {
			drifts = append(drifts, Drift{After: b})
		}
		removed, added = nil, nil
	}

	i, j := 0, 0
	for i < len(bk) || j < len(ak) {
		switch {
		case i < len(bk) && j < len(ak) && bk[i] == ak[j]:
			flush()
			i++
			j++
		case j >= len(ak) || (i < len(bk) && dp[i+1][j] >= dp[i][j+1]):
			removed = append(removed, &before[i])
			i++
		default:
			added = append(added, &after[j])
			j++
		}
	}
	flush()

	return drifts
}
