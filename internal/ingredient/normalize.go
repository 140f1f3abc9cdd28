package ingredient

import "strings"

// Irregular plurals the suffix rules below would mangle.
var irregularPlurals = map[string]string{
	"potatoes": "potato",
	"tomatoes": "tomato",
	"leaves":   "leaf",
	"halves":   "half",
	"loaves":   "loaf",
}

// Normalize maps a raw ingredient display name to its canonical identity:
// lowercased, trimmed, and singularized. The singularization is a heuristic;
// irregular or borrowed words outside the exception table may come out wrong,
// which is accepted rather than patched case by case.
func Normalize(rawName string) string {
	name := strings.ToLower(strings.TrimSpace(rawName))

	if singular, ok := irregularPlurals[name]; ok {
		return singular
	}

	switch {
	case strings.HasSuffix(name, "ies"):
		return name[:len(name)-3] + "y"
	case strings.HasSuffix(name, "es") && len(name) > 3:
		return name[:len(name)-2]
	case strings.HasSuffix(name, "s") && !strings.HasSuffix(name, "ss") && len(name) > 2:
		return name[:len(name)-1]
	}

	return name
}
