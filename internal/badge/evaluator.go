package badge

import "time"

// Evaluator awards badges. It has no state besides its clock.
type Evaluator struct {
	now func() time.Time
}

func NewEvaluator(now func() time.Time) *Evaluator {
	if now == nil {
		now = time.Now
	}

	return &Evaluator{now: now}
}

// Evaluate returns the badges whose threshold is met and that are not in
// alreadyEarned, stamped with the current time. Each family is checked
// independently and several tiers may be awarded at once.
func (e *Evaluator) Evaluate(
	currentStreak, totalMinutes, finishedBooks int,
	alreadyEarned []Kind,
) []Badge {
	earned := make(map[Kind]bool, len(alreadyEarned))
	for _, k := range alreadyEarned {
		earned[k] = true
	}

	values := map[Family]int{
		StreakFamily: currentStreak,
		TimeFamily:   totalMinutes,
		BooksFamily:  finishedBooks,
	}

	now := e.now()

	var awarded []Badge

	for _, k := range Kinds {
		if earned[k] || values[k.Family()] < k.Threshold() {
			continue
		}

		date := now
		awarded = append(awarded, Badge{Kind: k, EarnedDate: &date})
	}

	return awarded
}

// EarnedKinds returns the kinds of the earned badges in bs.
func EarnedKinds(bs []Badge) []Kind {
	kinds := make([]Kind, 0, len(bs))

	for i := range bs {
		if bs[i].IsEarned() {
			kinds = append(kinds, bs[i].Kind)
		}
	}

	return kinds
}
