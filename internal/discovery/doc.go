// Package discovery decides which catalog events are shown and how a
// selected event surfaces related ones.
//
// The free functions (Evaluate, Related, NormalizeQuery) are pure. Session
// is the explicitly owned state object: every mutation goes through a named
// transition (SetQuery, Transcript, SetTags, ToggleTag, ClearTags, Select,
// ClearSelection, ReplaceCatalog, Measure, PointerDown, PointerUp, Frame) and
// View projects the state for a renderer. Session is not safe for concurrent
// use; the manager package owns one inside a single goroutine.
package discovery
