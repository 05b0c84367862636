package assistant

import (
	"fmt"
	"strings"

	"github.com/singhsaravjit/portfolio-assistant/internal/profile"
)

// Render produces the reply for a classified utterance. It is a pure
// function of its inputs: no side effects, byte-identical output for
// identical (intent, utterance, snapshot). Every branch returns a
// non-empty reply; data-dependent intents degrade to a generic or
// default answer when the snapshot field they need is absent.
func Render(intent Intent, utterance string, snap profile.Snapshot) string {
	switch intent {
	case IntentFitSoftware:
		return fitSoftwareTemplate
	case IntentFitFullStack:
		return fitFullStackTemplate
	case IntentFitFrontend:
		return fitFrontendTemplate
	case IntentFitBackend:
		return fitBackendTemplate
	case IntentStrengths:
		return strengthsTemplate
	case IntentWorkStyle:
		return workStyleTemplate
	case IntentLeadership:
		return leadershipTemplate
	case IntentHiring:
		return hiringTemplate
	case IntentComparison:
		return comparisonTemplate
	case IntentSkills:
		return renderSkills(snap)
	case IntentExperience:
		return renderExperience(snap)
	case IntentEducation:
		return renderEducation(snap)
	case IntentProjects:
		return renderProjects(snap)
	case IntentContact:
		return renderContact(snap)
	case IntentAbout:
		return renderAbout(snap)
	case IntentResume:
		return resumeTemplate
	case IntentLocation:
		return locationTemplate
	case IntentAvailability:
		return availabilityTemplate
	case IntentCompensation:
		return compensationTemplate
	case IntentMotivation:
		return motivationTemplate
	case IntentTimeline:
		return timelineTemplate
	case IntentFamiliarityWeb:
		return familiarityWebTemplate
	case IntentFamiliarityCloud:
		return familiarityCloudTemplate
	case IntentGreeting:
		return greetingTemplate
	case IntentThanks:
		return thanksTemplate
	default:
		return defaultTemplate
	}
}

// Reply classifies and renders in one step.
func Reply(utterance string, snap profile.Snapshot) string {
	return Render(Classify(utterance), utterance, snap)
}

// Welcome is the assistant message every new conversation starts with.
func Welcome() string { return welcomeTemplate }

func renderSkills(snap profile.Snapshot) string {
	if snap.Skills == nil || len(snap.Skills.Skills) == 0 {
		return skillsFallbackTemplate
	}
	lines := make([]string, 0, len(snap.Skills.Skills))
	for _, cat := range snap.Skills.Skills {
		items := make([]string, 0, len(cat.Items))
		for _, it := range cat.Items {
			items = append(items, it.Title)
		}
		lines = append(lines, fmt.Sprintf("**%s**: %s", cat.Title, strings.Join(items, ", ")))
	}
	return fmt.Sprintf("Saravjit has expertise in various technologies:\n\n%s\n\nHe's proficient in full-stack development with React, .NET, and modern frameworks.",
		strings.Join(lines, "\n\n"))
}

func renderExperience(snap profile.Snapshot) string {
	if snap.Experiences == nil || len(snap.Experiences.Experiences) == 0 {
		return defaultTemplate
	}
	latest := snap.Experiences.Experiences[0]
	return fmt.Sprintf(`Saravjit is currently a %s at %s. His recent roles include:

• Graduate Teaching Assistant at Northeastern University
• Software Engineer at Q3 Technologies (React, .NET Core, Sitecore)
• Software Engineer at Altudo (Sitecore, TypeScript)
• Software Engineering Intern at Nvidia (C++, CUDA)

He has %d+ professional experiences with expertise in full-stack development.`,
		latest.Title, latest.Subtitle, len(snap.Experiences.Experiences))
}

func renderEducation(snap profile.Snapshot) string {
	if snap.Education == nil || len(snap.Education.Education) < 2 {
		return defaultTemplate
	}
	edu := snap.Education.Education
	return fmt.Sprintf(`Saravjit's educational background:

🎓 **%s** from %s (2025-2027)
GPA: 4.0/4.0

🎓 **%s** from %s (2017-2021)
GPA: 8.9/10`,
		edu[0].Title, edu[0].Subtitle, edu[1].Title, edu[1].Subtitle)
}

func renderProjects(snap profile.Snapshot) string {
	if snap.Projects == nil || len(snap.Projects.Projects) == 0 {
		return projectsFallbackTemplate
	}
	entries := snap.Projects.Projects
	if len(entries) > 3 {
		entries = entries[:3]
	}
	lines := make([]string, 0, len(entries))
	for i, p := range entries {
		lines = append(lines, fmt.Sprintf("%d. **%s** - %s", i+1, p.Title, firstLine(p.BodyText)))
	}
	return fmt.Sprintf("Here are some of Saravjit's notable projects:\n\n%s\n\nYou can explore more projects on his portfolio!",
		strings.Join(lines, "\n\n"))
}

// firstLine cuts at either an escaped `\n` sequence (as stored in the
// site's JSON documents) or a real newline, whichever comes first.
func firstLine(s string) string {
	if head, _, ok := strings.Cut(s, `\n`); ok {
		s = head
	}
	if head, _, ok := strings.Cut(s, "\n"); ok {
		s = head
	}
	return s
}

func renderContact(snap profile.Snapshot) string {
	var b strings.Builder
	b.WriteString("You can connect with Saravjit through:\n\n")
	if snap.Social != nil {
		for _, link := range snap.Social.Social {
			switch link.Network {
			case "linkedin":
				b.WriteString("💼 LinkedIn: " + link.Href + "\n")
			case "github":
				b.WriteString("💻 GitHub: " + link.Href + "\n")
			case "email":
				b.WriteString("📧 Email: " + strings.TrimPrefix(link.Href, "mailto:") + "\n")
			}
		}
	}
	b.WriteString("\nFeel free to reach out for opportunities, collaboration, or just to say hi!")
	return b.String()
}

func renderAbout(snap profile.Snapshot) string {
	if snap.About != nil && snap.About.About != "" {
		return snap.About.About
	}
	return aboutFallbackTemplate
}
