package profile

import (
	"encoding/json"
	"fmt"
)

// DecodeSection parses one raw section document into the snapshot.
// Unknown names are an error; malformed JSON is reported so callers
// can leave the field absent (never a hard failure for the engine).
func DecodeSection(snap *Snapshot, name string, raw []byte) error {
	switch name {
	case "about":
		var v About
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("decoding about: %w", err)
		}
		snap.About = &v
	case "skills":
		var v Skills
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("decoding skills: %w", err)
		}
		snap.Skills = &v
	case "education":
		var v Education
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("decoding education: %w", err)
		}
		snap.Education = &v
	case "experiences":
		var v Experiences
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("decoding experiences: %w", err)
		}
		snap.Experiences = &v
	case "projects":
		var v Projects
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("decoding projects: %w", err)
		}
		snap.Projects = &v
	case "social":
		var v Social
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("decoding social: %w", err)
		}
		snap.Social = &v
	default:
		return fmt.Errorf("unknown section %q", name)
	}
	return nil
}

// EncodeSection marshals the named section of the snapshot, or returns
// false when it is absent.
func EncodeSection(snap Snapshot, name string) ([]byte, bool, error) {
	var v any
	switch name {
	case "about":
		if snap.About == nil {
			return nil, false, nil
		}
		v = snap.About
	case "skills":
		if snap.Skills == nil {
			return nil, false, nil
		}
		v = snap.Skills
	case "education":
		if snap.Education == nil {
			return nil, false, nil
		}
		v = snap.Education
	case "experiences":
		if snap.Experiences == nil {
			return nil, false, nil
		}
		v = snap.Experiences
	case "projects":
		if snap.Projects == nil {
			return nil, false, nil
		}
		v = snap.Projects
	case "social":
		if snap.Social == nil {
			return nil, false, nil
		}
		v = snap.Social
	default:
		return nil, false, fmt.Errorf("unknown section %q", name)
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

// ValidSection reports whether name is one of the six known sections.
func ValidSection(name string) bool {
	for _, s := range SectionNames {
		if s == name {
			return true
		}
	}
	return false
}
