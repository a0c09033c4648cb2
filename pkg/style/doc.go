// Package style models CSS-like rules applied to rendered tables: table-wide
// selector rules, per-cell rules keyed by generated cell ids, and the Sheet
// collector that groups identical property text under shared selector lists
// before the stylesheet block is emitted.
package style
