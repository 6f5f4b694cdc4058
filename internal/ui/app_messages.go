package ui

// CycleStyleMsg switches the strip between fill and fit layout (SPC c s).
type CycleStyleMsg struct{}

// CycleShapeMsg advances the indicator shape: bar, box, rounded box, capsule (SPC c i).
type CycleShapeMsg struct{}

// FlipEdgeMsg moves the bar indicator between the bottom and top edge (SPC c e).
type FlipEdgeMsg struct{}

// ToggleFullWidthMsg switches the indicator between content and container bounds (SPC c w).
type ToggleFullWidthMsg struct{}

// ResetSelectionMsg writes index 0 to the selection binding from outside the strip (SPC r).
type ResetSelectionMsg struct{}

// ToggleHelpMsg opens or closes the full help screen (? or SPC ?).
type ToggleHelpMsg struct{}
