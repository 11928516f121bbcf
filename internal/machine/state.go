package machine

// State is a machine's production state as read from its entity.
type State int

const (
	// StateEmpty means the machine holds nothing and can pull an input.
	StateEmpty State = iota
	// StateProcessing means the machine is working and should be left alone.
	StateProcessing
	// StateDone means a finished output is waiting to be pushed out.
	StateDone
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateProcessing:
		return "processing"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}
