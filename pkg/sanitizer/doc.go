// Package sanitizer normalizes user-supplied text before validation
// and persistence. Strategies compose into pipelines; each exported
// function is a ready-made pipeline for one kind of field.
package sanitizer
