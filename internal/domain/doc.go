// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/ward, domain/broadcast).
// This root package holds the sentinel errors and the field-level
// ValidationError shared by every layer.
package domain
