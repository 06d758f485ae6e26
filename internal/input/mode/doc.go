// Package mode provides the modal editing state machine.
//
// Four modes exist:
//   - Normal: navigation, counts and mode changes
//   - Insert: text input
//   - CommandLine: typing a ':' command
//   - Visual: entered with 'v'; it accepts keys and does nothing with them
//
// # Architecture
//
// Every mode implements the Mode interface. The Manager holds the active
// mode and performs transitions. Handlers never reach into global state:
// they receive an Editor, the capability surface of the editing session,
// and act only through it.
//
// # Mode Lifecycle
//
// When switching modes:
// 1. Current mode's Exit() is called
// 2. New mode's Enter() is called
// 3. Mode change callbacks are notified
//
// Escape is not handled here. The session intercepts it before dispatch
// and returns to Normal from any mode.
package mode
