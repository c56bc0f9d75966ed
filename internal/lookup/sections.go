package lookup

import (
	"codeberg.org/snonux/wordexplorer/internal"
	"codeberg.org/snonux/wordexplorer/internal/linkify"
)

// CategoryPronunciation is the extra section linking to a dictionary with audio
const CategoryPronunciation Category = "pronunciation"

// Section is one titled markdown block of a lookup page
type Section struct {
	Category Category `json:"category"`
	Title    string   `json:"title"`
	Markdown string   `json:"markdown"`
}

var sectionTitles = map[Category]string{
	CategoryMeta:          "📊 Word Level Info",
	CategoryDefinition:    "📖 Definition",
	CategoryExample:       "🧠 Contextual Example",
	CategorySynonyms:      "🔁 Synonyms",
	CategoryPhonetics:     "🔊 Phonetically Similar Words",
	CategoryPronunciation: "📚 Pronunciation",
}

// BuildSections renders a bundle in fixed order. Synonym and phonetic bullets
// become lookup links and their model headings are dropped. English lookups
// get a trailing Cambridge Dictionary link.
func BuildSections(word string, bundle Bundle, lang Language) []Section {
	sections := make([]Section, 0, len(Categories)+1)

	for _, c := range Categories {
		text := bundle.Text(c)
		switch c {
		case CategorySynonyms:
			text = linkify.StripHeading(linkify.Linkify(text, []string{linkify.KeywordSynonym}, string(lang)), SynonymsHeading)
		case CategoryPhonetics:
			text = linkify.StripHeading(linkify.Linkify(text, []string{linkify.KeywordPhonetically}, string(lang)), PhoneticsHeading)
		}
		sections = append(sections, Section{Category: c, Title: sectionTitles[c], Markdown: text})
	}

	if lang == English {
		sections = append(sections, Section{
			Category: CategoryPronunciation,
			Title:    sectionTitles[CategoryPronunciation],
			Markdown: "[Hear on Cambridge Dictionary](" + internal.CambridgeURL(internal.SanitizeInput(word)) + ")",
		})
	}

	return sections
}
