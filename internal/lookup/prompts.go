package lookup

import (
	"strings"

	"codeberg.org/snonux/wordexplorer/internal/completion"
)

// Category names one of the five pieces of content fetched for a word
type Category string

const (
	CategoryMeta       Category = "meta"
	CategoryDefinition Category = "definition"
	CategoryExample    Category = "example"
	CategorySynonyms   Category = "synonyms"
	CategoryPhonetics  Category = "phonetics"
)

// Categories lists every category in render order
var Categories = []Category{
	CategoryMeta,
	CategoryDefinition,
	CategoryExample,
	CategorySynonyms,
	CategoryPhonetics,
}

// PromptSpec is a fixed prompt template bound to a category and model tier.
// Templates use {{word}} and {{language}} as substitution points.
type PromptSpec struct {
	Category Category
	Tier     completion.Tier
	Template string
}

// Render substitutes word and language into the template
func (p PromptSpec) Render(word string, lang Language) string {
	r := strings.NewReplacer("{{word}}", word, "{{language}}", string(lang))
	return strings.TrimSpace(r.Replace(p.Template))
}

// Headings the synonym and phonetic prompts ask the model to start with
const (
	SynonymsHeading  = "### Synonyms"
	PhoneticsHeading = "### Phonetically Similar Words"
)

// Prompts are the five prompts sent for every lookup
var Prompts = []PromptSpec{
	{
		Category: CategoryMeta,
		Tier:     completion.TierFast,
		Template: `
Provide the CEFR level (A1–C2) and frequency (common, medium, rare) for the word "{{word}}".
Respond using **exactly** this format (no extra text):

- **Word:** {{word}}
- **CEFR:** B2
- **Frequency:** Medium
`,
	},
	{
		Category: CategoryDefinition,
		Tier:     completion.TierReasoning,
		Template: `
Provide a clear, concise definition of the word "{{word}}" in simple English.
If the word has multiple meanings, list each meaning as a separate bullet point.
Do not include any introduction or conclusion. Use this format:

- meaning 1
- meaning 2
`,
	},
	{
		Category: CategoryExample,
		Tier:     completion.TierReasoning,
		Template: `
Write 1–2 short, natural {{language}} sentences using the word "{{word}}" in context.
If there are multiple meanings, give one example per meaning.
Do not add any commentary or extra text. Use this format:

- example sentence 1
- example sentence 2
`,
	},
	{
		Category: CategorySynonyms,
		Tier:     completion.TierFast,
		Template: `
List up to 3 '{{language}}' synonyms for the word "{{word}}".
If there are multiple meanings, group synonyms by meaning.
Do not add explanations. Use this format:

` + SynonymsHeading + `
- synonym 1
- synonym 2
- synonym 3
`,
	},
	{
		Category: CategoryPhonetics,
		Tier:     completion.TierFast,
		Template: `
List up to 3 {{language}} words that sound similar to "{{word}}", excluding "{{word}}" itself.
Do not add explanations. Use this format:

` + PhoneticsHeading + `
- word 1
- word 2
- word 3
`,
	},
}
