// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by handlers.
// Outbound ports (Directory, Dispatcher) are implemented by adapters and called
// by the application layer.
package ports
