// Package commands defines the storewire CLI: one subcommand per
// chapter of the walkthrough, each wiring the same store into a view
// a different way.
//
// Commands
//
//   - basic     Callback subscription, no view framework
//   - provider  Store carried ambiently through context
//   - hooks     Selector watchers and a dispatch helper
//   - connect   Higher-order connecting function around a props view
//   - draw      The same store behind a Plan 9 draw window
//
// # Implementation
//
// The root command constructs the store and attaches the inspector
// bridge before any subcommand runs, so every chapter observes the
// same wiring for construction and debugging and differs only in how
// the view reaches state and dispatch.
package commands
