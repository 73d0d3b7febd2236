// Package output renders compilation results and errors for the terminal.
//
// Styling goes through the styles subpackage and is switched off entirely
// when color is disabled, so redirected output stays plain text.
package output
