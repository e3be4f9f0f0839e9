package practice

import "github.com/abhisek/sprout/internal/problem"

// problemReadyMsg carries the next problem, or nil when every requested
// family is exhausted.
type problemReadyMsg struct {
	Problem *problem.Problem
}

// feedbackDoneMsg is sent when the child dismisses the feedback panel.
type feedbackDoneMsg struct{}

// roundEndMsg ends the round and shows the summary.
type roundEndMsg struct{}
