package assistant

import "testing"

func TestClassify_RuleTable(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Intent
	}{
		{"fit software", "Is Saravjit good for software development roles?", IntentFitSoftware},
		{"fit software qualified", "is he qualified as an engineer", IntentFitSoftware},
		{"fit fullstack", "would he be suitable for a full stack position", IntentFitFullStack},
		{"fit frontend", "is he right for a React opening", IntentFitFrontend},
		{"fit backend", "good for .NET teams?", IntentFitBackend},
		{"strengths", "what is he best at", IntentStrengths},
		{"strengths tell", "tell me his strengths", IntentStrengths},
		{"work style", "how does he approach problems", IntentWorkStyle},
		{"leadership", "can he collaborate with designers", IntentLeadership},
		{"hiring", "should I consider him for my startup", IntentHiring},
		{"comparison", "what makes him stand out", IntentComparison},
		{"comparison direct", "does he have an advantage over others", IntentComparison},
		{"skills", "list his skills", IntentSkills},
		{"skills tech stack", "which tech stack does he use", IntentSkills},
		{"experience", "describe his experience", IntentExperience},
		{"experience company", "which company does he code for", IntentExperience},
		{"education", "his degree please", IntentEducation},
		{"projects", "show me projects", IntentProjects},
		{"contact", "how to connect?", IntentContact},
		{"contact email", "his email please", IntentContact},
		{"about", "introduce him", IntentAbout},
		{"resume", "share his cv", IntentResume},
		{"location", "where is he based", IntentLocation},
		{"availability", "is he available for an opportunity", IntentAvailability},
		{"compensation", "expected salary?", IntentCompensation},
		{"motivation", "why software engineering", IntentMotivation},
		{"timeline", "when does he graduate", IntentTimeline},
		{"familiarity web", "is he familiar with node", IntentFamiliarityWeb},
		{"familiarity cloud", "does he know kubernetes", IntentFamiliarityCloud},
		{"greeting", "hello there", IntentGreeting},
		{"greeting bare hi", "hi", IntentGreeting},
		{"greeting hi word", "hi friend", IntentGreeting},
		{"thanks", "thanks a lot", IntentThanks},
		{"no match", "xyzzy plugh", IntentDefault},
		{"empty", "", IntentDefault},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.in); got != tc.want {
				t.Fatalf("Classify(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	lower := Classify("what are his strengths")
	upper := Classify("WHAT ARE HIS STRENGTHS")
	if lower != upper || lower != IntentStrengths {
		t.Fatalf("case sensitivity leak: lower=%q upper=%q", lower, upper)
	}
}

// Overlapping-keyword inputs must resolve to the earlier rule.
func TestClassify_PriorityOrder(t *testing.T) {
	cases := []struct {
		in   string
		want Intent
	}{
		// "experience" also matches the plain experience rule.
		{"is he good for software development given his experience", IntentFitSoftware},
		// "work" also matches the experience rule; "how" pins work style.
		{"how does he work", IntentWorkStyle},
		// "hire" appears in both hiring and availability; "should" pins hiring.
		{"should I hire him", IntentHiring},
		// Without "should", "hire" falls through to availability.
		{"can I hire him", IntentAvailability},
		// "experience with react" contains "experience", which wins
		// before the familiarity rule is reached.
		{"does he have experience with react", IntentExperience},
		// "familiar" reaches the familiarity rules.
		{"is he familiar with react", IntentFamiliarityWeb},
	}
	for _, tc := range cases {
		if got := Classify(tc.in); got != tc.want {
			t.Fatalf("Classify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// An outer familiarity keyword with no recognized technology must not
// partially match; it falls through the table.
func TestClassify_FamiliarityNeedsTechnology(t *testing.T) {
	if got := Classify("is he familiar with elixir"); got != IntentDefault {
		t.Fatalf("Classify = %q, want %q", got, IntentDefault)
	}
}
