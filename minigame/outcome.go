package minigame

import "time"

// Outcome holds a decided result on screen for a short while before the session returns it
type Outcome struct {
	res     Result
	reason  string
	decided bool
	left    time.Duration
}

// Decide fixes the result once; later calls are ignored
func (o *Outcome) Decide(res Result, reason string, hold time.Duration) {
	if o.decided {
		return
	}
	o.res, o.reason, o.decided, o.left = res, reason, true, hold
}

// Decided reports the fixed result, if any
func (o *Outcome) Decided() (Result, bool) {
	return o.res, o.decided
}

// Reason is the line shown under the banner
func (o *Outcome) Reason() string { return o.reason }

// Banner is the headline for the decided result
func (o *Outcome) Banner() string {
	if o.res.Won() {
		return "MINIGAME WON"
	}
	return "MINIGAME LOST"
}

// Step counts the hold down; done once a decided result has been shown long enough
func (o *Outcome) Step(dt time.Duration) (Result, bool) {
	if !o.decided {
		return Lose, false
	}
	o.left -= dt
	return o.res, o.left <= 0
}
