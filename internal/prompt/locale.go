package prompt

import "golang.org/x/text/language"

// Bundle carries the language-specific prompt fragment and the user-facing
// fallback strings for one supported language.
type Bundle struct {
	Tag language.Tag

	// Directive is injected into the prompt to steer output language.
	Directive string

	// User-facing strings the rendering layer shows on its own.
	MsgNoCredential string
	MsgQuota        string
	MsgRetry        string
	MsgEmptyJobs    string

	// LoadingPhrases cycle on a timer while a request is in flight.
	LoadingPhrases []string
}

var english = Bundle{
	Tag:             language.English,
	Directive:       "LANGUAGE: Write summary, scope analysis, roadmap and motivation in clear English.",
	MsgNoCredential: "API key is not configured. Set the GOOGLE_API_KEY environment variable and retry.",
	MsgQuota:        "API quota is exhausted. Please try again in a minute or check billing.",
	MsgRetry:        "Something went wrong. Please try again.",
	MsgEmptyJobs:    "No openings found right now. Please try again shortly.",
	LoadingPhrases: []string{
		"Scanning market trends...",
		"Comparing global salaries...",
		"Drafting your roadmap...",
		"Collecting learning resources...",
		"Almost there...",
	},
}

var hindi = Bundle{
	Tag:             language.Hindi,
	Directive:       "LANGUAGE: Summary, scope, roadmap aur motivation HINDI ya HINGLISH mein honi chahiye.",
	MsgNoCredential: "API key nahi mili. Kripya GOOGLE_API_KEY environment variable set karke dubara try karein.",
	MsgQuota:        "API quota khatam ho gaya hai. Kripya 1 minute baad koshish karein ya billing check karein.",
	MsgRetry:        "Kuch galat ho gaya. Kripya dubara try karein.",
	MsgEmptyJobs:    "Abhi koi opening nahi mili. Thodi der baad try karein.",
	LoadingPhrases: []string{
		"Market trends scan ho rahe hain...",
		"Global salaries ka vishleshan...",
		"Aapke liye sateek roadmap taiyar...",
		"Learning resources dhundhe ja rahe hain...",
		"Bas kuch hi pal aur...",
	},
}

var supported = []Bundle{english, hindi}

var matcher = language.NewMatcher(func() []language.Tag {
	tags := make([]language.Tag, len(supported))
	for i, b := range supported {
		tags[i] = b.Tag
	}
	return tags
}())

// Localize resolves a BCP 47 language tag to its bundle. Unknown or empty
// tags fall back to the English base bundle.
func Localize(tag string) Bundle {
	if tag == "" {
		return english
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		return english
	}
	_, idx, _ := matcher.Match(parsed)
	return supported[idx]
}
