// Package template defines the renderer-agnostic template engine seam.
// Concrete engines live in subpackages; renderers depend on the interface so
// callers can swap the engine without touching markup assembly.
package template
