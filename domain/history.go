package domain

// Turn is one completed exchange kept in short-term memory.
type Turn struct {
	Request  string `json:"request"`
	Response string `json:"response"`
}

// History is the bounded conversation window shared by every caller.
type History interface {
	// Append adds turn at the end, evicting the oldest turns when full.
	Append(turn Turn)
	// Snapshot returns the retained turns oldest first.
	Snapshot() []Turn
}
