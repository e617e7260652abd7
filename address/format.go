package address

import (
	"fmt"

	"golang.org/x/text/language"
)

var displayLanguages = []language.Tag{
	language.SimplifiedChinese,
	language.English,
}

var displayMatcher = language.NewMatcher(displayLanguages)

// Format renders the address together with its chain name in the
// requested language. Unknown language codes fall back to the default
// language, formatting is presentation-only and never fails.
func (r *Registry) Format(a UniversalAddress, lang string) string {
	_, idx := language.MatchStrings(displayMatcher, lang)
	name := r.Name(a.ChainID)

	switch displayLanguages[idx] {
	case language.SimplifiedChinese:
		return fmt.Sprintf("%s（%s）", a.Address, name)
	default:
		return fmt.Sprintf("%s (%s)", a.Address, name)
	}
}
