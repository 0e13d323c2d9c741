// Package checksum implements the ISBN-13 weighted modulo-10 check.
//
// The expected check value is computed as 10 - (sum mod 10) and compared
// without a further reduction, so a sum divisible by 10 yields 10 and can
// never match a single check digit.
package checksum

import "isbnsplit/pkg/model"

// PayloadGroups is the number of leading groups that feed the weighted sum.
const PayloadGroups = 4

// Weight returns the multiplier for the digit at position pos, counted
// across all payload groups starting at 0.
func Weight(pos int) int {
	if pos&1 == 1 {
		return 3
	}
	return 1
}

type state struct {
	pos int
	sum int
}

func (s state) add(d byte) state {
	return state{pos: s.pos + 1, sum: s.sum + int(d-'0')*Weight(s.pos)}
}

// WeightedSum folds every digit of the first four groups, left to right,
// into the alternating 1,3 weighted sum. The position counter is shared by
// all four groups. Non-digit bytes are skipped without advancing it.
func WeightedSum(groups model.GroupSet) int {
	var s state
	for i := 0; i < PayloadGroups; i++ {
		v := groups[i].Value
		for j := 0; j < len(v); j++ {
			if !isDigit(v[j]) {
				continue
			}
			s = s.add(v[j])
		}
	}
	return s.sum
}

// Expected returns the check value the sum calls for, in the range 1..10.
func Expected(sum int) int {
	return 10 - sum%10
}

// Verify reports whether the first character of the check digit group
// matches the value computed from the payload groups.
func Verify(groups model.GroupSet) bool {
	cd, ok := groups[model.CheckDigit].Get()
	if !ok || cd == "" || !isDigit(cd[0]) {
		return false
	}
	return Expected(WeightedSum(groups)) == int(cd[0]-'0')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
