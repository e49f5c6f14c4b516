// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

// Option is a single choice within a survey. Values handed out by a Survey
// are copies; changing them does not touch the survey.
type Option struct {
	Text          string
	PreferredRank *int // 1-based, nil when unranked
	Votes         int
}

func (o Option) clone() Option {
	if o.PreferredRank != nil {
		rank := *o.PreferredRank
		o.PreferredRank = &rank
	}
	return o
}

func (o Option) hasRank(rank int) bool {
	return o.PreferredRank != nil && *o.PreferredRank == rank
}
