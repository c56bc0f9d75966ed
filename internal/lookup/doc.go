// Package lookup builds the five learning prompts for a word, fetches them
// concurrently and assembles the results into a bundle keyed by category.
//
// A failing prompt never fails the lookup: its entry carries an inline
// "Error: ..." text so the remaining categories can still be shown.
package lookup
