// Package driving defines the interfaces that external actors use to
// drive the core (primary/inbound ports). The CLI and TUI depend on these
// interfaces; core services implement them.
package driving
