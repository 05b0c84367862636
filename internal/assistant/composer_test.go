package assistant

import (
	"strings"
	"testing"

	"github.com/singhsaravjit/portfolio-assistant/internal/profile"
)

func TestRender_StaticIntentsIgnoreSnapshot(t *testing.T) {
	full := fullSnapshot()
	empty := profile.Snapshot{}

	statics := []Intent{
		IntentFitSoftware, IntentFitFullStack, IntentFitFrontend, IntentFitBackend,
		IntentStrengths, IntentWorkStyle, IntentLeadership, IntentHiring,
		IntentComparison, IntentResume, IntentLocation, IntentAvailability,
		IntentCompensation, IntentMotivation, IntentTimeline,
		IntentFamiliarityWeb, IntentFamiliarityCloud,
		IntentGreeting, IntentThanks, IntentDefault,
	}
	for _, intent := range statics {
		withData := Render(intent, "q", full)
		withoutData := Render(intent, "q", empty)
		if withData == "" {
			t.Fatalf("intent %q rendered empty", intent)
		}
		if withData != withoutData {
			t.Fatalf("intent %q depends on snapshot", intent)
		}
	}
}

func TestRender_Idempotent(t *testing.T) {
	snap := fullSnapshot()
	a := Render(IntentSkills, "skills", snap)
	b := Render(IntentSkills, "skills", snap)
	if a != b {
		t.Fatalf("render not deterministic:\n%q\n%q", a, b)
	}
}

func TestRender_DefaultFallback(t *testing.T) {
	got := Render(IntentDefault, "xyzzy", fullSnapshot())
	if !strings.HasPrefix(got, "I can help you learn about Saravjit's:") {
		t.Fatalf("unexpected default reply: %q", got)
	}
}

func TestRender_FitSoftwareScenario(t *testing.T) {
	got := Render(Classify("Is Saravjit good for software development roles?"), "", profile.Snapshot{})
	if !strings.HasPrefix(got, "✅ **Absolutely!**") {
		t.Fatalf("expected strong affirmation, got %q", got)
	}
	for _, want := range []string{"Academic Background", "Proven Experience", "Tech Stack", "Real Impact", "Teaching Experience"} {
		if !strings.Contains(got, want) {
			t.Fatalf("fit reply missing %q", want)
		}
	}
}

func TestRenderSkills(t *testing.T) {
	snap := profile.Snapshot{
		Skills: &profile.Skills{
			Skills: []profile.SkillCategory{
				{Title: "Languages", Items: []profile.SkillItem{{Title: "Go"}, {Title: "C#"}}},
				{Title: "Frameworks", Items: []profile.SkillItem{{Title: "React"}}},
			},
		},
	}
	got := Render(IntentSkills, "skills", snap)
	if !strings.Contains(got, "**Languages**: Go, C#") {
		t.Fatalf("missing languages line: %q", got)
	}
	if !strings.Contains(got, "**Languages**: Go, C#\n\n**Frameworks**: React") {
		t.Fatalf("categories not blank-line separated: %q", got)
	}
}

func TestRenderSkills_AbsentFallsBack(t *testing.T) {
	got := Render(IntentSkills, "skills", profile.Snapshot{})
	if got != skillsFallbackTemplate {
		t.Fatalf("expected generic skills summary, got %q", got)
	}
}

func TestRenderExperience(t *testing.T) {
	snap := profile.Snapshot{
		Experiences: &profile.Experiences{Experiences: []profile.ExperienceEntry{
			{Title: "Graduate Teaching Assistant", Subtitle: "Northeastern University"},
			{Title: "Software Engineer", Subtitle: "Q3 Technologies"},
			{Title: "Software Engineer", Subtitle: "Altudo"},
			{Title: "Software Engineering Intern", Subtitle: "Nvidia"},
		}},
	}
	got := Render(IntentExperience, "experience", snap)
	if !strings.Contains(got, "currently a Graduate Teaching Assistant at Northeastern University") {
		t.Fatalf("missing latest role: %q", got)
	}
	if !strings.Contains(got, "He has 4+ professional experiences") {
		t.Fatalf("missing entry count: %q", got)
	}
}

func TestRenderExperience_AbsentFallsBackToDefault(t *testing.T) {
	got := Render(IntentExperience, "experience", profile.Snapshot{})
	if got != defaultTemplate {
		t.Fatalf("expected default reply, got %q", got)
	}
}

func TestRenderEducation(t *testing.T) {
	snap := profile.Snapshot{
		Education: &profile.Education{Education: []profile.EducationEntry{
			{Title: "M.S. Computer Science", Subtitle: "Northeastern University"},
			{Title: "B.Tech Computer Science", Subtitle: "GGSIPU"},
		}},
	}
	got := Render(IntentEducation, "education", snap)
	if !strings.Contains(got, "**M.S. Computer Science** from Northeastern University") {
		t.Fatalf("missing first degree: %q", got)
	}
	if !strings.Contains(got, "**B.Tech Computer Science** from GGSIPU") {
		t.Fatalf("missing second degree: %q", got)
	}
}

func TestRenderEducation_NeedsTwoEntries(t *testing.T) {
	snap := profile.Snapshot{
		Education: &profile.Education{Education: []profile.EducationEntry{
			{Title: "M.S. Computer Science", Subtitle: "Northeastern University"},
		}},
	}
	if got := Render(IntentEducation, "education", snap); got != defaultTemplate {
		t.Fatalf("expected default reply, got %q", got)
	}
}

func TestRenderProjects(t *testing.T) {
	snap := profile.Snapshot{
		Projects: &profile.Projects{Projects: []profile.ProjectEntry{
			{Title: "Railway Booking", BodyText: `Booking platform for operators\nMore detail`},
			{Title: "Campus Recruit", BodyText: "Hiring portal\nsecond line"},
			{Title: "Search Engine", BodyText: "C++ search engine"},
			{Title: "Fourth", BodyText: "never shown"},
		}},
	}
	got := Render(IntentProjects, "projects", snap)
	if !strings.Contains(got, "1. **Railway Booking** - Booking platform for operators") {
		t.Fatalf("escaped newline not cut: %q", got)
	}
	if !strings.Contains(got, "2. **Campus Recruit** - Hiring portal") {
		t.Fatalf("real newline not cut: %q", got)
	}
	if !strings.Contains(got, "3. **Search Engine** - C++ search engine") {
		t.Fatalf("missing third project: %q", got)
	}
	if strings.Contains(got, "Fourth") {
		t.Fatalf("more than three projects rendered: %q", got)
	}
}

func TestRenderProjects_AbsentFallsBack(t *testing.T) {
	if got := Render(IntentProjects, "projects", profile.Snapshot{}); got != projectsFallbackTemplate {
		t.Fatalf("expected static fallback, got %q", got)
	}
}

func TestRenderContact_SingleNetwork(t *testing.T) {
	snap := profile.Snapshot{
		Social: &profile.Social{Social: []profile.SocialLink{
			{Network: "github", Href: "https://github.com/x"},
		}},
	}
	got := Render(IntentContact, "contact", snap)
	if !strings.Contains(got, "💻 GitHub: https://github.com/x") {
		t.Fatalf("missing github line: %q", got)
	}
	if strings.Contains(got, "LinkedIn") || strings.Contains(got, "Email") {
		t.Fatalf("unexpected network lines: %q", got)
	}
	if !strings.Contains(got, "Feel free to reach out") {
		t.Fatalf("missing closing invitation: %q", got)
	}
}

func TestRenderContact_StripsMailtoAndSkipsUnknown(t *testing.T) {
	snap := profile.Snapshot{
		Social: &profile.Social{Social: []profile.SocialLink{
			{Network: "email", Href: "mailto:me@example.com"},
			{Network: "mastodon", Href: "https://example.social/@me"},
		}},
	}
	got := Render(IntentContact, "contact", snap)
	if !strings.Contains(got, "📧 Email: me@example.com") {
		t.Fatalf("mailto prefix not stripped: %q", got)
	}
	if strings.Contains(got, "mastodon") || strings.Contains(got, "example.social") {
		t.Fatalf("unrecognized network not skipped: %q", got)
	}
}

func TestRenderContact_NoSocialStillInvites(t *testing.T) {
	got := Render(IntentContact, "contact", profile.Snapshot{})
	if !strings.Contains(got, "Feel free to reach out") {
		t.Fatalf("missing closing invitation: %q", got)
	}
}

func TestRenderAbout(t *testing.T) {
	snap := profile.Snapshot{About: &profile.About{About: "Custom bio text."}}
	if got := Render(IntentAbout, "about", snap); got != "Custom bio text." {
		t.Fatalf("about not verbatim: %q", got)
	}
	if got := Render(IntentAbout, "about", profile.Snapshot{}); got != aboutFallbackTemplate {
		t.Fatalf("expected fallback bio, got %q", got)
	}
}

func fullSnapshot() profile.Snapshot {
	return profile.Snapshot{
		About: &profile.About{About: "bio"},
		Skills: &profile.Skills{Skills: []profile.SkillCategory{
			{Title: "Languages", Items: []profile.SkillItem{{Title: "Go"}}},
		}},
		Education: &profile.Education{Education: []profile.EducationEntry{
			{Title: "M.S.", Subtitle: "NEU"}, {Title: "B.Tech", Subtitle: "GGSIPU"},
		}},
		Experiences: &profile.Experiences{Experiences: []profile.ExperienceEntry{
			{Title: "TA", Subtitle: "NEU"},
		}},
		Projects: &profile.Projects{Projects: []profile.ProjectEntry{
			{Title: "P1", BodyText: "desc"},
		}},
		Social: &profile.Social{Social: []profile.SocialLink{
			{Network: "github", Href: "https://github.com/x"},
		}},
	}
}
