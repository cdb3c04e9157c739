package core

import "time"

// Submitter simulates the network round trip of a form submission.
// The wait is fixed: it is neither cancellable nor retried.
type Submitter struct {
	Delay time.Duration
	sleep func(time.Duration)
}

func NewSubmitter(delay time.Duration) *Submitter {
	return &Submitter{Delay: delay, sleep: time.Sleep}
}

// Submit blocks for the configured delay then returns the redirect target.
func (s *Submitter) Submit(next string) string {
	if s.Delay > 0 {
		s.sleep(s.Delay)
	}
	return next
}
