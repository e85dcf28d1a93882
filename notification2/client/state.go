package client

type State int

const (
	State_Unconfigured State = iota
	State_Searching
	State_Deleting
	State_Creating
	State_Ready
	State_Failed
)

func (s State) String() string {
	switch s {
	case State_Unconfigured:
		return "unconfigured"
	case State_Searching:
		return "searching"
	case State_Deleting:
		return "deleting"
	case State_Creating:
		return "creating"
	case State_Ready:
		return "ready"
	case State_Failed:
		return "failed"
	}
	return "unknown"
}
