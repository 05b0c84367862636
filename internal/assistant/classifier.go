package assistant

import "strings"

// Classify maps an utterance to its intent. Matching is
// case-insensitive and substring-based ("developer" matches inside
// "developers"); there is no scoring, the first rule whose terms are
// all satisfied wins. No match resolves to IntentDefault.
func Classify(text string) Intent {
	msg := strings.ToLower(text)
	for _, r := range rules {
		if matches(msg, r) {
			return r.Intent
		}
	}
	return IntentDefault
}

func matches(msg string, r Rule) bool {
	for _, t := range r.Terms {
		if !termSatisfied(msg, t) {
			return false
		}
	}
	return true
}

func termSatisfied(msg string, t term) bool {
	for _, w := range t.Any {
		if strings.Contains(msg, w) {
			return true
		}
	}
	for _, w := range t.Exact {
		if msg == w {
			return true
		}
	}
	return false
}
