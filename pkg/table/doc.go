// Package table defines the typed tabular model consumed by renderers: a
// rectangular value grid plus ordered row/column axes whose labels may be
// single-level or hierarchical. Builders validate shape up front so renderers
// can walk the grid without bounds bookkeeping.
package table
