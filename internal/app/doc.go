// Package app is the application layer - the only component that wires the
// repositories to the analytics pipeline. Handlers route all operations
// through the Service.
package app
