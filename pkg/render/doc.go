// Package render defines the renderer-facing contract: the translated
// Document view model, per-render Options, the Renderer interface, and a
// named-renderer Registry for dependency injection friendly wiring.
package render
