// Package services implements the driving port interfaces.
// Services contain the core business logic - the retriever composition
// and the session state machine - and orchestrate calls to driven ports
// (adapters).
//
// Services are pure Go with no CGO or external dependencies beyond the
// session ID generator.
package services
