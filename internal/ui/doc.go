// Package ui is the stripdemo application: a section browser whose tab bar is a
// strip.Model and whose body is a scrollable viewport.
//
// Building blocks:
//   - View: a screen region with its own Init/Update/View (Elm-style)
//   - SectionView: the scrollable body showing the active section
//   - KeybindRegistry/KeyHandler: spacemacs-style leader bindings (SPC ...)
//   - AppModel: wires the strip, the body, key handling, persistence and telemetry
package ui
