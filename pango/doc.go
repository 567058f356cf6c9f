// Package pango wraps the pango font face and font description entry
// points. Font faces are reference-counted GObjects; font descriptions
// are plain records owned outright and duplicated on clone.
package pango
