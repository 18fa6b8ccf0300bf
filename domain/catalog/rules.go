package catalog

import (
	"path"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultTitle is used when a filename yields no words.
const DefaultTitle = "Metal Work Project"

var categoryRules = []struct {
	segment  string
	category string
}{
	{"/gate/", CategoryGates},
	{"/fence/", CategoryFences},
	{"/balustrade/", CategoryBalustrades},
	{"/metalwork/", CategoryMetalWorks},
}

// Categorize infers a category from the folder a file sits in. The first
// matching rule wins; matching ignores case.
func Categorize(p string) string {
	lower := "/" + strings.ToLower(strings.TrimPrefix(p, "/"))
	for _, r := range categoryRules {
		if strings.Contains(lower, r.segment) {
			return r.category
		}
	}
	return CategoryOthers
}

// SynthesizeTitle turns a filename like "sliding_gate-02.jpg" into
// "Sliding Gate".
func SynthesizeTitle(filename string) string {
	name := strings.TrimSuffix(filename, path.Ext(filename))
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9':
			return -1
		case r == '_' || r == '-':
			return ' '
		}
		return r
	}, name)

	words := strings.Fields(name)
	if len(words) == 0 {
		return DefaultTitle
	}
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// Caption is a curated title and description for a numbered folder.
type Caption struct {
	Title       string
	Description string
}

// TitleTable resolves titles, preferring curated captions keyed by the
// numeric folder a file sits in.
type TitleTable map[int]Caption

// Title returns the curated title for p's numeric folder, or a title
// synthesized from its filename.
func (t TitleTable) Title(p string) string {
	if key, ok := numericFolder(p); ok {
		if c, ok := t[key]; ok && c.Title != "" {
			return c.Title
		}
	}
	return SynthesizeTitle(path.Base(p))
}

func numericFolder(p string) (int, bool) {
	dir := path.Base(path.Dir(p))
	n, err := strconv.Atoi(dir)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
