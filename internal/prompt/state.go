package prompt

// State is a step of the prompt loop.  The loop starts in Prompting
// and ends in Accepted or RejectedTerminal.
type State int

const (
	Prompting State = iota
	Validating
	Accepted
	RejectedRetry
	RejectedTerminal
)

var stateNames = [...]string{
	Prompting:        "prompting",
	Validating:       "validating",
	Accepted:         "accepted",
	RejectedRetry:    "rejected-retry",
	RejectedTerminal: "rejected-terminal",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}
