// Package manager hosts one discovery session behind a single goroutine.
//
// Request goroutines never touch session state directly: every public method
// hands a closure to the session loop and waits for it to run. The loop also
// owns the carousel frame source, so frames and requests are serialized.
//
//   - manager.go: Manager type, the loop, and request plumbing.
//   - config.go: ManagerConfig and package defaults; NewWithConfig applies defaults.
//   - ops.go: filter, selection, voice and carousel operations.
//   - catalog.go: Reload and ReplaceCatalog.
//   - status_report.go: Status and readiness.
//   - events.go, eventpub_memory.go, broadcast.go: change publication.
//   - errors.go: error types and helpers (IsEventNotFound, IsUnsupportedIntent).
//   - metrics.go: Prometheus collectors for the engine.
package manager
