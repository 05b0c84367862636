package profile

// The six section records mirror the JSON documents the portfolio site
// serves. Field names and tags follow the site's data format, so the
// same documents can be consumed from its endpoints or stored verbatim.

// About is the bio section.
type About struct {
	About    string `json:"about"`
	ImageSrc string `json:"imageSource,omitempty"`
}

// Skills groups technologies into titled categories.
type Skills struct {
	Intro  string          `json:"intro,omitempty"`
	Skills []SkillCategory `json:"skills"`
}

type SkillCategory struct {
	Title string      `json:"title"`
	Items []SkillItem `json:"items"`
}

type SkillItem struct {
	Title string `json:"title"`
	Icon  string `json:"icon,omitempty"`
}

// Education holds degree entries, most recent first.
type Education struct {
	Education []EducationEntry `json:"education"`
}

type EducationEntry struct {
	Title        string   `json:"cardTitle"`
	Subtitle     string   `json:"cardSubtitle"`
	DetailedText string   `json:"cardDetailedText,omitempty"`
	Icon         *SVGIcon `json:"icon,omitempty"`
}

type SVGIcon struct {
	Src string `json:"src"`
}

// Experiences holds work entries, most recent first.
type Experiences struct {
	Experiences []ExperienceEntry `json:"experiences"`
}

type ExperienceEntry struct {
	Title           string   `json:"title"`
	Subtitle        string   `json:"subtitle"`
	WorkType        string   `json:"workType,omitempty"`
	WorkDescription []string `json:"workDescription,omitempty"`
	DateText        string   `json:"dateText,omitempty"`
}

// Projects holds project cards.
type Projects struct {
	Projects []ProjectEntry `json:"projects"`
}

type ProjectEntry struct {
	Title    string        `json:"title"`
	BodyText string        `json:"bodyText"`
	Links    []ProjectLink `json:"links,omitempty"`
	Tags     []string      `json:"tags,omitempty"`
}

type ProjectLink struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// Social holds outbound links keyed by network name.
type Social struct {
	Social []SocialLink `json:"social"`
}

type SocialLink struct {
	Network string `json:"network"`
	Href    string `json:"href"`
}

// Snapshot is the current, possibly partial, set of section records.
// A nil field means that section has not loaded (yet, or at all); the
// dialogue engine treats the whole struct as read-only.
type Snapshot struct {
	About       *About
	Skills      *Skills
	Education   *Education
	Experiences *Experiences
	Projects    *Projects
	Social      *Social
}

// SectionNames lists the six sections in their canonical order.
var SectionNames = []string{"about", "skills", "education", "experiences", "projects", "social"}
