// Package tenses rewrites a sentence in every major tense of English or
// Italian, with formation notes and highlighted auxiliaries.
package tenses
