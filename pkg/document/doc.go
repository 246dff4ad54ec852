// Package document defines the resume document edited by the wizard. A
// Document is a value: every operation in this package takes the current
// snapshot and returns a new one with the touched slice replaced, copying any
// slice or map it changes so snapshots held by other consumers (persistence,
// preview) never observe a partial update. Narrative answers are a string map
// so custom question ids created at runtime fit next to the six fixed ids,
// which remain reachable through named accessors on Answers.
package document
