package tui

// stateChangedMsg tells the model the manager state moved on. The model
// re-reads the snapshot itself, so coalesced or reordered signals are fine.
type stateChangedMsg struct{}
