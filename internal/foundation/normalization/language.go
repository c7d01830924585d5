package normalization

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// LanguageTag canonicalizes a BCP 47 tag ("zh-cn" -> "zh-CN", "EN_us" -> "en-US").
// Malformed tags are returned trimmed together with the parse error.
func LanguageTag(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("empty language tag")
	}
	tag, err := language.Parse(strings.ReplaceAll(trimmed, "_", "-"))
	if err != nil {
		return trimmed, fmt.Errorf("malformed language tag %q: %w", raw, err)
	}
	return tag.String(), nil
}
