package manager

// State represents the lifecycle state of the manager's catalog.
type State string

const (
	StateReady   State = "ready"
	StateLoading State = "loading"
	StateError   State = "error"
)
