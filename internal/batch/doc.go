// Package batch reads word lists for batch lookups.
package batch
