// Package ui provides the terminal interface for podium.
//
// # Architecture Overview
//
// The interface is a Bubble Tea program with one tab per managed entity:
// About Us, Sponsors and Nominees. Each tab renders a panel from
// internal/panel; the UI never talks to the backend itself. Keys become panel
// actions, the commands those actions return run off the update loop, and
// their completion messages are routed back to every panel.
//
// # Package Structure
//
//   - app.go: Model, Options, the update loop and Run
//   - list.go: paged entity tables, the detail pane and list keys
//   - editor.go: text inputs bound to the open form draft
//   - modal.go: yes/no confirmation for nominee deletes and last-row removals
//   - picker.go: image file picker for About Us images and sponsor logos
//   - header.go: tabs, command bar and notification bar
//   - help.go, keys.go: key bindings and the help overlay
//   - markdown.go: glamour rendering of descriptions
//   - theme.go, style_helpers.go, strings.go: styling helpers
//
// # Overlays
//
// Input is offered to overlays in order: help, confirmation, file picker,
// open form, then the list. The confirmation modal blocks everything else
// until it is answered.
//
// # Preferences
//
// The theme (T) and rows per page (+) are saved to the prefs file as soon as
// they change.
package ui
