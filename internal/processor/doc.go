// Package processor contains the command-line workflows of wordexplorer.
// It wires the completion client into word lookups, batch lookups,
// sentence transformations, the model listing and the web server, and
// prints results as markdown.
package processor
