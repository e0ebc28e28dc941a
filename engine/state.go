package engine

// State - engine lifecycle state
type State int32

const (
	Initializing State = iota
	Tailing
	Processing
	ShuttingDown
	Terminated
)

func (s State) String() string {
	switch s {
	case Initializing:
		return "initializing"
	case Tailing:
		return "tailing"
	case Processing:
		return "processing"
	case ShuttingDown:
		return "shutting down"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}
