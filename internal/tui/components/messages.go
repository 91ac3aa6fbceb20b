package components

// CloseHelpMsg is emitted when the help view asks to be dismissed.
type CloseHelpMsg struct{}
