package language

import (
	"strings"

	xlanguage "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

var namer = display.English.Tags()

// DisplayName returns a human-readable English name for a language code or
// tag ("fa-IR" becomes "Persian (Iran)"). Returns "Unknown" for empty input,
// or the uppercased code for input no name is known for.
func DisplayName(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return "Unknown"
	}
	tag, err := xlanguage.Parse(strings.ReplaceAll(code, "_", "-"))
	if err != nil {
		return strings.ToUpper(code)
	}
	if name := namer.Name(tag); name != "" {
		return name
	}
	return strings.ToUpper(code)
}
