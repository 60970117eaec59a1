package tui

// promptMsg makes the input line visible and focused.
type promptMsg struct{}
