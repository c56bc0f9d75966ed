package linkify

import (
	"strings"
	"testing"
)

func TestLinkify(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		keywords []string
		lang     string
		want     string
	}{
		{
			name:     "synonyms section",
			text:     "### Synonyms\n- happy\n- joyful",
			keywords: []string{"synonym"},
			lang:     "English",
			want:     "### Synonyms\n- [happy](?word=happy&lang=English)\n- [joyful](?word=joyful&lang=English)",
		},
		{
			name:     "space encoded",
			text:     "### Synonyms\n- well off",
			keywords: []string{"synonym"},
			lang:     "English",
			want:     "### Synonyms\n- [well off](?word=well%20off&lang=English)",
		},
		{
			name:     "phonetic section in Italian",
			text:     "### Phonetically Similar Words\n- precario\n- preparato",
			keywords: []string{"phonetically"},
			lang:     "Italian",
			want:     "### Phonetically Similar Words\n- [precario](?word=precario&lang=Italian)\n- [preparato](?word=preparato&lang=Italian)",
		},
		{
			name:     "bullet before any header is untouched",
			text:     "- happy\n### Synonyms\n- glad",
			keywords: []string{"synonym"},
			lang:     "English",
			want:     "- happy\n### Synonyms\n- [glad](?word=glad&lang=English)",
		},
		{
			name:     "section survives blank and prose lines",
			text:     "### Synonyms\n\nMeaning 1:\n- glad\n\n- cheerful",
			keywords: []string{"synonym"},
			lang:     "English",
			want:     "### Synonyms\n\nMeaning 1:\n- [glad](?word=glad&lang=English)\n\n- [cheerful](?word=cheerful&lang=English)",
		},
		{
			name:     "non linkable keyword switches the section off",
			text:     "### Synonyms\n- glad\n### Antonyms\n- sad",
			keywords: []string{"synonym", "antonym"},
			lang:     "English",
			want:     "### Synonyms\n- [glad](?word=glad&lang=English)\n### Antonyms\n- sad",
		},
		{
			name:     "keyword match is case insensitive substring",
			text:     "SYNONYMS (by meaning)\n- glad",
			keywords: []string{"Synonym"},
			lang:     "English",
			want:     "SYNONYMS (by meaning)\n- [glad](?word=glad&lang=English)",
		},
		{
			name:     "bullet containing a keyword activates the section itself",
			text:     "- synonymous\n- alike",
			keywords: []string{"synonym"},
			lang:     "English",
			want:     "- [synonymous](?word=synonymous&lang=English)\n- [alike](?word=alike&lang=English)",
		},
		{
			name:     "indented bullet",
			text:     "### Synonyms\n   - glad  ",
			keywords: []string{"synonym"},
			lang:     "English",
			want:     "### Synonyms\n- [glad](?word=glad&lang=English)",
		},
		{
			name:     "non bullet lines inside section untouched",
			text:     "### Synonyms\n* glad\n-glad\n1. glad",
			keywords: []string{"synonym"},
			lang:     "English",
			want:     "### Synonyms\n* glad\n-glad\n1. glad",
		},
		{
			name:     "bullet with empty payload untouched",
			text:     "### Synonyms\n- - -",
			keywords: []string{"synonym"},
			lang:     "English",
			want:     "### Synonyms\n- - -",
		},
		{
			name:     "leading dashes stripped from payload",
			text:     "### Synonyms\n- -glad",
			keywords: []string{"synonym"},
			lang:     "English",
			want:     "### Synonyms\n- [glad](?word=glad&lang=English)",
		},
		{
			name:     "empty language omits parameter",
			text:     "### Synonyms\n- well off",
			keywords: []string{"synonym"},
			lang:     "",
			want:     "### Synonyms\n- [well off](?word=well%20off)",
		},
		{
			name:     "no keywords leaves text untouched",
			text:     "### Synonyms\n- glad",
			keywords: nil,
			lang:     "English",
			want:     "### Synonyms\n- glad",
		},
		{
			name:     "trailing newline kept",
			text:     "### Synonyms\n- glad\n",
			keywords: []string{"synonym"},
			lang:     "English",
			want:     "### Synonyms\n- [glad](?word=glad&lang=English)\n",
		},
		{
			name:     "empty text",
			text:     "",
			keywords: []string{"synonym"},
			lang:     "English",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Linkify(tt.text, tt.keywords, tt.lang)
			if got != tt.want {
				t.Errorf("Linkify() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestLinkify_NotIdempotent(t *testing.T) {
	once := Linkify("### Synonyms\n- happy", []string{"synonym"}, "English")
	twice := Linkify(once, []string{"synonym"}, "English")

	want := "### Synonyms\n- [[happy](?word=happy&lang=English)](?word=[happy](?word=happy&lang=English)&lang=English)"
	if twice != want {
		t.Errorf("second pass =\n%q\nwant\n%q", twice, want)
	}
}

func TestLinkify_PreservesLineCount(t *testing.T) {
	inputs := []string{
		"",
		"\n",
		"\n\n\n",
		"### Synonyms",
		"### Synonyms\n- a\n- b\n- c",
		"### Synonyms\r\n- a\r\n- b\r\n",
		"- x\n- y\n### Phonetically Similar Words\n- z\n\n",
		"### Synonyms\n- - -\n-\n- \n  -  \n",
		"text without any list\nat all",
	}

	for _, input := range inputs {
		for _, keywords := range [][]string{{"synonym"}, {"phonetically"}, {"synonym", "phonetically"}} {
			out := Linkify(input, keywords, "English")
			if got, want := strings.Count(out, "\n"), strings.Count(input, "\n"); got != want {
				t.Errorf("Linkify(%q, %v) changed line count: %d -> %d", input, keywords, want, got)
			}
		}
	}
}

func TestQuery(t *testing.T) {
	tests := []struct {
		word, lang, want string
	}{
		{"happy", "English", "?word=happy&lang=English"},
		{"well off", "English", "?word=well%20off&lang=English"},
		{"a b c", "Italian", "?word=a%20b%20c&lang=Italian"},
		{"happy", "", "?word=happy"},
	}

	for _, tt := range tests {
		if got := Query(tt.word, tt.lang); got != tt.want {
			t.Errorf("Query(%q, %q) = %q, want %q", tt.word, tt.lang, got, tt.want)
		}
	}
}

func TestStripHeading(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		heading string
		want    string
	}{
		{
			name:    "removes heading line",
			text:    "### Synonyms\n- [glad](?word=glad)",
			heading: "### Synonyms",
			want:    "- [glad](?word=glad)",
		},
		{
			name:    "keeps other headings",
			text:    "### Synonyms for meaning 1\n- glad",
			heading: "### Synonyms",
			want:    "### Synonyms for meaning 1\n- glad",
		},
		{
			name:    "no heading",
			text:    "- glad",
			heading: "### Synonyms",
			want:    "- glad",
		},
		{
			name:    "heading with whitespace",
			text:    "  ### Phonetically Similar Words \n- word",
			heading: "### Phonetically Similar Words",
			want:    "- word",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripHeading(tt.text, tt.heading); got != tt.want {
				t.Errorf("StripHeading() = %q, want %q", got, tt.want)
			}
		})
	}
}
