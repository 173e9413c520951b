package media

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used whenever a request carries no language.
const DefaultLanguage = "en-US"

// NormalizeLanguage canonicalizes a BCP-47 tag into the "ll-RR" form the
// catalog expects. A bare language gains its most likely region ("en" becomes
// "en-US", "fa" becomes "fa-IR"). Empty or unparseable input yields
// DefaultLanguage.
func NormalizeLanguage(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return DefaultLanguage
	}
	parsed, err := language.Parse(strings.ReplaceAll(tag, "_", "-"))
	if err != nil {
		return DefaultLanguage
	}
	base, conf := parsed.Base()
	if conf == language.No {
		return DefaultLanguage
	}
	region, conf := parsed.Region()
	if conf == language.No || region.String() == "ZZ" {
		return base.String()
	}
	return base.String() + "-" + region.String()
}
