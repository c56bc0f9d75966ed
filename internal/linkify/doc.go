// Package linkify rewrites bulleted markdown lists into links that start a
// new lookup for the listed word. It works line by line and never adds,
// removes or reorders lines.
package linkify
