package prompts

// Outcome tags the result of resolving a filename against the configuration.
type Outcome string

// Resolution outcomes. Ignored and Unmatched are distinct: Ignored means a
// rule definitively excluded the file from revision; Unmatched means no rule
// applied and no default prompt was configured, so the caller falls back to
// the built-in section prompt.
const (
	OutcomeResolved  Outcome = "resolved"
	OutcomeIgnored   Outcome = "ignored"
	OutcomeUnmatched Outcome = "unmatched"
)

// Match records how a rule pattern matched a filename: the pattern itself
// and the matched span within the filename.
type Match struct {
	Pattern string
	Start   int
	End     int
	Text    string
}

// Resolution is the outcome of resolving one filename. Prompt is set only
// for OutcomeResolved. Match is set whenever a rule pattern matched; a
// default-prompt fallback resolves with a nil Match.
type Resolution struct {
	Outcome Outcome
	Prompt  string
	Match   *Match
}

// Resolved reports whether a prompt was selected for the file.
func (r Resolution) Resolved() bool { return r.Outcome == OutcomeResolved }

// Ignored reports whether the file is definitively excluded from revision.
func (r Resolution) Ignored() bool { return r.Outcome == OutcomeIgnored }

// Unmatched reports whether no rule applied and no default was configured.
func (r Resolution) Unmatched() bool { return r.Outcome == OutcomeUnmatched }

func resolved(prompt string, m *Match) Resolution {
	return Resolution{Outcome: OutcomeResolved, Prompt: prompt, Match: m}
}

func ignored(m *Match) Resolution {
	return Resolution{Outcome: OutcomeIgnored, Match: m}
}

func unmatched() Resolution {
	return Resolution{Outcome: OutcomeUnmatched}
}
