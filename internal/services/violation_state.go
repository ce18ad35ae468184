package services

// ViolationStatus is the moderation standing of a user.
type ViolationStatus string

const (
	StatusClean   ViolationStatus = "clean"
	StatusFlagged ViolationStatus = "flagged"
	StatusBlocked ViolationStatus = "blocked"
)

// ViolationEvent drives transitions between statuses.
type ViolationEvent string

const (
	EventFlag    ViolationEvent = "flag"
	EventUnblock ViolationEvent = "unblock"
)

// ViolationState is one user's position in the escalation machine.
type ViolationState struct {
	Status ViolationStatus
	Count  int
}

// NextState applies one event. Rules:
//   - a flag increments the count; reaching threshold moves to blocked
//   - flags against a blocked user change nothing
//   - an unblock restores flagged standing but keeps the count, so the
//     history survives and re-blocking decisions can consider it
func NextState(cur ViolationState, event ViolationEvent, threshold int) ViolationState {
	switch event {
	case EventFlag:
		if cur.Status == StatusBlocked {
			return cur
		}
		next := ViolationState{Status: StatusFlagged, Count: cur.Count + 1}
		if next.Count >= threshold {
			next.Status = StatusBlocked
		}
		return next
	case EventUnblock:
		if cur.Status != StatusBlocked {
			return cur
		}
		status := StatusFlagged
		if cur.Count == 0 {
			status = StatusClean
		}
		return ViolationState{Status: status, Count: cur.Count}
	}
	return cur
}
