package core

// JoinState is the room membership lifecycle. Transitions are recorded as
// requested; sequencing correctness is the caller's responsibility, so a
// self-presence handler may move any state straight to Joined.
type JoinState string

const (
	NotJoined JoinState = "not-joined"
	Requested JoinState = "requested"
	Joined    JoinState = "joined"
)

// Valid reports whether s is one of the three known states. Production
// paths never check this; it exists for tests and debug assertions.
func (s JoinState) Valid() bool {
	switch s {
	case NotJoined, Requested, Joined:
		return true
	}
	return false
}
