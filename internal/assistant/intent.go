package assistant

// Intent is the classified category of a visitor utterance.
type Intent string

const (
	IntentFitSoftware      Intent = "fit_software"
	IntentFitFullStack     Intent = "fit_fullstack"
	IntentFitFrontend      Intent = "fit_frontend"
	IntentFitBackend       Intent = "fit_backend"
	IntentStrengths        Intent = "strengths"
	IntentWorkStyle        Intent = "work_style"
	IntentLeadership       Intent = "leadership"
	IntentHiring           Intent = "hiring"
	IntentComparison       Intent = "comparison"
	IntentSkills           Intent = "skills"
	IntentExperience       Intent = "experience"
	IntentEducation        Intent = "education"
	IntentProjects         Intent = "projects"
	IntentContact          Intent = "contact"
	IntentAbout            Intent = "about"
	IntentResume           Intent = "resume"
	IntentLocation         Intent = "location"
	IntentAvailability     Intent = "availability"
	IntentCompensation     Intent = "compensation"
	IntentMotivation       Intent = "motivation"
	IntentTimeline         Intent = "timeline"
	IntentFamiliarityWeb   Intent = "familiarity_web"
	IntentFamiliarityCloud Intent = "familiarity_cloud"
	IntentGreeting         Intent = "greeting"
	IntentThanks           Intent = "thanks"
	IntentDefault          Intent = "default"
)

// A term is one keyword group. It is satisfied when the normalized
// utterance contains any of Any as a substring, or equals any of Exact.
type term struct {
	Any   []string
	Exact []string
}

// A Rule pairs an intent with the terms that must all be satisfied.
type Rule struct {
	Intent Intent
	Terms  []term
}

func anyOf(words ...string) term { return term{Any: words} }

// rules is evaluated in order; the first full match wins. Order is
// load-bearing: keyword groups overlap ("experience" appears in both
// the fit rules and the plain experience rule), so earlier rules
// deliberately shadow later ones on ambiguous input.
var rules = []Rule{
	{IntentFitSoftware, []term{
		anyOf("good for", "suitable for", "right for", "fit for", "qualified"),
		anyOf("software", "developer", "engineer", "programming"),
	}},
	{IntentFitFullStack, []term{
		anyOf("good for", "suitable for", "right for", "fit for", "qualified"),
		anyOf("full-stack", "full stack", "fullstack"),
	}},
	{IntentFitFrontend, []term{
		anyOf("good for", "suitable for", "right for", "fit for", "qualified"),
		anyOf("react", "frontend", "front-end"),
	}},
	{IntentFitBackend, []term{
		anyOf("good for", "suitable for", "right for", "fit for", "qualified"),
		anyOf("backend", "back-end", ".net", "dotnet"),
	}},
	{IntentStrengths, []term{
		anyOf("what", "tell"),
		anyOf("best", "strength", "good at", "excel"),
	}},
	{IntentWorkStyle, []term{
		anyOf("how"),
		anyOf("work", "approach", "solve"),
	}},
	{IntentLeadership, []term{
		anyOf("leader", "team", "collaborate", "work with"),
	}},
	{IntentHiring, []term{
		anyOf("should"),
		anyOf("hire", "consider", "recommend"),
	}},
	{IntentComparison, []term{
		anyOf("better", "compare", "advantage", "stand out"),
	}},
	{IntentSkills, []term{
		anyOf("skill", "technology", "tech stack"),
	}},
	{IntentExperience, []term{
		anyOf("experience", "work", "job", "company"),
	}},
	{IntentEducation, []term{
		anyOf("education", "degree", "university", "study"),
	}},
	{IntentProjects, []term{
		anyOf("project", "portfolio", "built", "work on"),
	}},
	{IntentContact, []term{
		anyOf("contact", "connect", "reach", "email", "linkedin"),
	}},
	{IntentAbout, []term{
		anyOf("about", "who", "tell me", "introduce"),
	}},
	{IntentResume, []term{
		anyOf("resume", "cv"),
	}},
	{IntentLocation, []term{
		anyOf("location", "where", "based"),
	}},
	{IntentAvailability, []term{
		anyOf("available", "hire", "opportunity"),
	}},
	{IntentCompensation, []term{
		anyOf("salary", "compensation", "pay", "rate"),
	}},
	{IntentMotivation, []term{
		anyOf("why"),
		anyOf("software", "developer", "engineer", "computer science"),
	}},
	{IntentTimeline, []term{
		anyOf("when"),
		anyOf("start", "available", "join", "graduate"),
	}},
	{IntentFamiliarityWeb, []term{
		anyOf("know", "familiar", "experience with"),
		anyOf("react", "next", "node"),
	}},
	{IntentFamiliarityCloud, []term{
		anyOf("know", "familiar", "experience with"),
		anyOf("docker", "kubernetes", "cloud", "aws", "azure"),
	}},
	{IntentGreeting, []term{
		{Any: []string{"hello", "hi ", "hey"}, Exact: []string{"hi"}},
	}},
	{IntentThanks, []term{
		anyOf("thank", "thanks"),
	}},
}
