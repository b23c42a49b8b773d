// Package renderer turns the computed reports of the unicorn package into
// markdown documents, ready for the terminal (glamour) or for HTML
// conversion (goldmark).
package renderer
