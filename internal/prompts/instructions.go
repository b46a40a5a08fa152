package prompts

import (
	"fmt"
	"strings"

	"github.com/JaimeStill/quill/pkg/formatting"
)

const abstractInstructions = `
	Revise the following paragraph from the abstract of an academic paper
	(with the title '%s' and keywords '%s')
	so the research problem/question is clear,
	   the solution proposed is clear,
	   the text grammar is correct, spelling errors are fixed,
	   and the text is in active voice and has a clear sentence structure`

const introductionInstructions = `
	Revise the following paragraph from the %s section of an academic paper
	(with the title '%s' and keywords '%s')
	so
	   most of the citations to other academic papers are kept,
	   the text minimizes the use of jargon,
	   the text grammar is correct, spelling errors are fixed,
	   and the text has a clear sentence structure`

const resultsInstructions = `
	Revise the following paragraph from the Results section of an academic paper
	(with the title '%s' and keywords '%s')
	so
	   most references to figures and tables are kept,
	   the details are enough to clearly explain the outcomes,
	   sentences are concise and to the point,
	   the text minimizes the use of jargon,
	   the text grammar is correct, spelling errors are fixed,
	   and the text has a clear sentence structure`

const methodsInstructions = `
	Revise the paragraph(s) below from the Methods section of an academic paper
	(with the title '%s' and keywords '%s')
	so
	   most of the citations to other academic papers are kept,
	   most of the technical details are kept,
	   most references to equations (such as "Equation (@id)") are kept,
	   all equations definitions (such as '$$ ... $$ {#id}') are included with newlines before and after,
	   the most important symbols in equations are defined,
	   spelling errors are fixed, the text grammar is correct,
	   and the text has a clear sentence structure`

const genericInstructions = `
	Revise the following paragraph of an academic paper
	(with the title '%s' and keywords '%s')
	so
	   the text minimizes the use of jargon,
	   the text grammar is correct, spelling errors are fixed,
	   and the text has a clear sentence structure`

// BuiltIn returns the hardcoded revision prompt for a manuscript section,
// interpolating the manuscript title and keywords. This is the fallback used
// when no configuration source binds a prompt to the file.
func BuiltIn(section Section, title string, keywords []string) string {
	kw := strings.Join(keywords, ", ")

	var text string
	switch section {
	case SectionAbstract:
		text = fmt.Sprintf(abstractInstructions, title, kw)
	case SectionIntroduction, SectionDiscussion:
		text = fmt.Sprintf(introductionInstructions, section.Title(), title, kw)
	case SectionResults:
		text = fmt.Sprintf(resultsInstructions, title, kw)
	case SectionMethods:
		text = fmt.Sprintf(methodsInstructions, title, kw)
	default:
		text = fmt.Sprintf(genericInstructions, title, kw)
	}

	return formatting.CollapseSpaces(text)
}
