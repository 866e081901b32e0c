package i18n

import (
	"math"

	"golang.org/x/text/feature/plural"
)

// PluralCategory is one of the six CLDR cardinal categories.
type PluralCategory string

const (
	PluralZero  PluralCategory = "zero"
	PluralOne   PluralCategory = "one"
	PluralTwo   PluralCategory = "two"
	PluralFew   PluralCategory = "few"
	PluralMany  PluralCategory = "many"
	PluralOther PluralCategory = "other"
)

// PluralRule maps a non-negative integer count to a plural category.
type PluralRule func(n int) PluralCategory

// Built-in cardinal rules keyed by language family, used when the runtime
// has no CLDR data for the locale. Ported from CLDR.
var pluralRules = map[string]PluralRule{
	"arabic": func(n int) PluralCategory {
		switch {
		case n == 0:
			return PluralZero
		case n == 1:
			return PluralOne
		case n == 2:
			return PluralTwo
		case n%100 >= 3 && n%100 <= 10:
			return PluralFew
		case n%100 >= 11 && n%100 <= 99:
			return PluralMany
		default:
			return PluralOther
		}
	},
	"chinese": func(int) PluralCategory {
		return PluralOther
	},
	"french": func(n int) PluralCategory {
		if n == 0 || n == 1 {
			return PluralOne
		}
		return PluralOther
	},
	"german": func(n int) PluralCategory {
		if n == 1 {
			return PluralOne
		}
		return PluralOther
	},
	"irish": func(n int) PluralCategory {
		switch {
		case n == 1:
			return PluralOne
		case n == 2:
			return PluralTwo
		case n >= 3 && n <= 6:
			return PluralFew
		case n >= 7 && n <= 10:
			return PluralMany
		default:
			return PluralOther
		}
	},
	"russian": func(n int) PluralCategory {
		lastTwo := n % 100
		last := lastTwo % 10
		switch {
		case last == 1 && lastTwo != 11:
			return PluralOne
		case last >= 2 && last <= 4 && !(lastTwo >= 12 && lastTwo <= 14):
			return PluralFew
		case last == 0 || (last >= 5 && last <= 9) || (lastTwo >= 11 && lastTwo <= 14):
			return PluralMany
		default:
			return PluralOther
		}
	},
	"scottish": func(n int) PluralCategory {
		switch {
		case n == 1 || n == 11:
			return PluralOne
		case n == 2 || n == 12:
			return PluralTwo
		case (n >= 3 && n <= 10) || (n >= 13 && n <= 19):
			return PluralFew
		default:
			return PluralOther
		}
	},
	"spanish": func(n int) PluralCategory {
		switch {
		case n == 1:
			return PluralOne
		case n%1000000 == 0 && n != 0:
			return PluralMany
		default:
			return PluralOther
		}
	},
	"welsh": func(n int) PluralCategory {
		switch n {
		case 0:
			return PluralZero
		case 1:
			return PluralOne
		case 2:
			return PluralTwo
		case 3:
			return PluralFew
		case 6:
			return PluralMany
		default:
			return PluralOther
		}
	},
}

// Language-to-family map for the built-in rules.
var pluralFamilies = map[string]string{
	"ar": "arabic",
	"my": "chinese", "zh": "chinese", "id": "chinese", "ja": "chinese",
	"jv": "chinese", "ko": "chinese", "ms": "chinese", "th": "chinese",
	"vi": "chinese",
	"hy": "french", "bn": "french", "fr": "french", "gu": "french",
	"hi": "french", "fa": "french", "pa": "french", "zu": "french",
	"af": "german", "sq": "german", "az": "german", "eu": "german",
	"bg": "german", "ca": "german", "da": "german", "nl": "german",
	"en": "german", "et": "german", "fi": "german", "ka": "german",
	"de": "german", "el": "german", "hu": "german", "lb": "german",
	"no": "german", "so": "german", "sw": "german", "sv": "german",
	"ta": "german", "te": "german", "tr": "german", "ur": "german",
	"ga": "irish",
	"ru": "russian", "uk": "russian",
	"gd": "scottish",
	"es": "spanish",
	"cy": "welsh",
}

// fallbackRule returns the built-in rule for a locale, trying the full tag
// before the base language. Unknown locales always select "other".
func fallbackRule(locale string) (PluralRule, bool) {
	if family, ok := pluralFamilies[locale]; ok {
		return pluralRules[family], true
	}
	if family, ok := pluralFamilies[baseLanguage(locale)]; ok {
		return pluralRules[family], true
	}
	return nil, false
}

// pluralCategory selects the cardinal category for count under the engine's
// locale. CLDR data via x/text is preferred; the built-in family rules cover
// locales the runtime cannot parse.
func (t *I18n) pluralCategory(count float64) PluralCategory {
	if math.IsNaN(count) || math.IsInf(count, 0) {
		return PluralOther
	}

	n := int(math.Abs(math.Floor(count)))

	if t.tagOK {
		return formCategory(plural.Cardinal.MatchPlural(t.tag, n, 0, 0, 0, 0))
	}

	if rule, ok := fallbackRule(t.locale); ok {
		return rule(n)
	}
	return PluralOther
}

func formCategory(form plural.Form) PluralCategory {
	switch form {
	case plural.Zero:
		return PluralZero
	case plural.One:
		return PluralOne
	case plural.Two:
		return PluralTwo
	case plural.Few:
		return PluralFew
	case plural.Many:
		return PluralMany
	default:
		return PluralOther
	}
}
