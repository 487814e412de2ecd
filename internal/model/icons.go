package model

// Centralized icons for the UI components
// Using simple single-width characters for consistent terminal rendering
const (
	IconCursor   = "›" // Marks the highlighted task
	IconSummary  = "≡" // Task carries a summary block
	IconNoDesc   = "·" // Task has no description
	IconLocation = "@" // Source location prefix
)
