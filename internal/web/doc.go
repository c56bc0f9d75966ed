// Package web serves the word explorer user interface and its JSON API.
//
// The page reads the word, lang, sentence and tab query parameters. A page
// request carrying a word performs a lookup, so the links produced for
// synonyms and phonetic neighbours start a new lookup when followed.
package web
