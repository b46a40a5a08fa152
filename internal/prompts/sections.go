package prompts

import "strings"

// Section identifies the manuscript section a file belongs to, inferred from
// its filename. The section selects which built-in prompt applies when no
// configured rule matches.
type Section string

// Recognized manuscript sections.
const (
	SectionAbstract     Section = "abstract"
	SectionIntroduction Section = "introduction"
	SectionResults      Section = "results"
	SectionDiscussion   Section = "discussion"
	SectionMethods      Section = "methods"
	SectionGeneric      Section = ""
)

// SectionFromFilename infers the manuscript section from a filename, e.g.
// "01.abstract.md" is the abstract. Unrecognized filenames yield
// SectionGeneric, which selects the generic built-in prompt.
func SectionFromFilename(filename string) Section {
	name := strings.ToLower(filename)

	switch {
	case strings.Contains(name, "abstract"):
		return SectionAbstract
	case strings.Contains(name, "intro"):
		return SectionIntroduction
	case strings.Contains(name, "result"):
		return SectionResults
	case strings.Contains(name, "discussion"), strings.Contains(name, "conclusion"):
		return SectionDiscussion
	case strings.Contains(name, "method"):
		return SectionMethods
	default:
		return SectionGeneric
	}
}

// Title returns the section name capitalized for prompt interpolation.
func (s Section) Title() string {
	if s == SectionGeneric {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}
