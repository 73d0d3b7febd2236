// Package types holds the pack record shared by the descriptor loader, the
// validators and the compiler pipeline.
package types
