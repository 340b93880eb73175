package projection

import (
	"strings"

	"github.com/ymori/portfolio-server/internal/fields"
)

// Documents have accumulated several spellings for the same logical field:
// snake_case language-suffixed (title_en), camelCase language-suffixed
// (titleEn), and unsuffixed legacy keys (title) written before the site was
// bilingual. langKeys generates the language-specific candidates for a base
// key in precedence order; the legacy candidates are appended after them, so
// a document carrying only the legacy key resolves to that value in both
// languages equally.
func langKeys(base, suffix string) []string {
	return []string{
		base + "_" + suffix,
		camelCase(base) + strings.ToUpper(suffix[:1]) + suffix[1:],
	}
}

// camelCase converts a snake_case key to its camelCase spelling.
func camelCase(key string) string {
	parts := strings.Split(key, "_")
	if len(parts) == 1 {
		return key
	}
	var b strings.Builder
	b.WriteString(parts[0])
	for _, part := range parts[1:] {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// legacyKeys expands a set of unsuffixed base keys into snake and camel
// spellings, preserving order and dropping duplicates.
func legacyKeys(bases ...string) []string {
	keys := make([]string, 0, len(bases)*2)
	seen := make(map[string]bool, len(bases)*2)
	for _, base := range bases {
		for _, key := range []string{base, camelCase(base)} {
			if !seen[key] {
				seen[key] = true
				keys = append(keys, key)
			}
		}
	}
	return keys
}

// resolveLang resolves one language's raw value for a logical field:
// language-suffixed candidates first, then the shared legacy candidates.
func resolveLang(record map[string]any, suffix string, bases []string) any {
	keys := make([]string, 0, len(bases)*4)
	for _, base := range bases {
		keys = append(keys, langKeys(base, suffix)...)
	}
	keys = append(keys, legacyKeys(bases...)...)
	return fields.Resolve(record, keys...)
}

// biText resolves a scalar field into its bilingual pair.
func biText(record map[string]any, bases ...string) BilingualText {
	return BilingualText{
		EN: fields.ToScalar(resolveLang(record, "en", bases)),
		JA: fields.ToScalar(resolveLang(record, "ja", bases)),
	}
}

// biParagraphs resolves a blank-line-delimited field into bilingual
// paragraph lists.
func biParagraphs(record map[string]any, bases ...string) BilingualList {
	return BilingualList{
		EN: fields.ToParagraphs(resolveLang(record, "en", bases)),
		JA: fields.ToParagraphs(resolveLang(record, "ja", bases)),
	}
}

// biLines resolves a line-list field into bilingual line lists.
func biLines(record map[string]any, bases ...string) BilingualList {
	return BilingualList{
		EN: fields.ToLines(resolveLang(record, "en", bases)),
		JA: fields.ToLines(resolveLang(record, "ja", bases)),
	}
}
