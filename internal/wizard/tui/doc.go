// Package tui implements the terminal user interface for the optimium-args
// wizard.
//
// The interface is a single full-screen Bubble Tea model (AppModel) that
// renders the current step of a wizard.Session. It holds no document state
// of its own: every edit is committed to the session as it is typed, and the
// widgets are rebuilt from the session whenever the step changes.
//
// # Layout
//
// Every frame is wrapped by RenderApplicationContainer:
//   - Header: application name and version
//   - Content: step progress, step heading, the step's image caption and
//     one widget per field
//   - Footer: context-sensitive help from bubbles/help
//
// On the final step the content also carries the download destination and
// a download button.
//
// # Widgets
//
// Each prompt kind maps to a widget:
//   - text, number: bubbles/textinput
//   - choice: radio row cycled with ←/→ or space
//   - toggle: checkbox flipped with ←/→ or space
//
// Fields still holding a template placeholder show it as placeholder text,
// so the first keystroke replaces it.
//
// # Key Bindings
//
//   - ctrl+n / ctrl+p: next and previous step (no-op at either end)
//   - tab / shift+tab: move between fields
//   - enter: next field, then next step; on the destination it downloads
//   - ctrl+s: download (final step only)
//   - ctrl+r: start over with a fresh document
//   - f1: toggle the full help
//   - esc / ctrl+c: quit
//
// # Usage Example
//
//	session := wizard.NewSession()
//	if err := tui.Run(session, "user_arguments.json", arguments.FormatJSON); err != nil {
//	    log.Fatal(err)
//	}
package tui
