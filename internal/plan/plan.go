package plan

import (
	"regexp"
	"strconv"
	"strings"
)

// Issue is one parsed work item. Records are immutable after parsing.
type Issue struct {
	Number             int      `json:"number"`
	Title              string   `json:"title"`
	Labels             []string `json:"labels"`
	Phase              string   `json:"phase"`
	Estimate           string   `json:"estimate"`
	Description        string   `json:"description"`
	Tasks              []string `json:"tasks,omitempty"`
	AcceptanceCriteria []string `json:"acceptance_criteria,omitempty"`
	Body               string   `json:"body"`
}

// Skipped describes a candidate issue heading whose block did not match
// the expected shape.
type Skipped struct {
	Line    int    `json:"line"`
	Heading string `json:"heading"`
}

// Result holds the parsed records in document order plus any skipped
// candidate blocks.
type Result struct {
	Issues  []Issue
	Skipped []Skipped
}

var (
	headingRe = regexp.MustCompile(`(?m)^### Issue (\d+): (.+)$`)

	// blockRe matches the segment between an issue heading and the next
	// heading (or EOF): a blank line, the labels line, the estimate line,
	// a blank line, then the description marker and the remaining text.
	blockRe = regexp.MustCompile("(?s)\\A\n\n\\*\\*Labels:\\*\\* `(.*?)`[ \t]*\n\\*\\*Estimate:\\*\\* (.+?)\n\n\\*\\*Description:\\*\\*\\s+(.+)\\z")

	taskRe = regexp.MustCompile(`- \[ \] (.+)`)

	criteriaRe = regexp.MustCompile(`(?i)\*\*Acceptance criteria:\*\*`)
)

// Parse extracts issue records from a markdown plan document.
// A document with zero matching blocks yields an empty Result, not an error.
func Parse(content string) Result {
	var res Result

	headings := headingRe.FindAllStringSubmatchIndex(content, -1)
	for i, h := range headings {
		segStart := h[1]
		segEnd := len(content)
		if i+1 < len(headings) {
			segEnd = headings[i+1][0]
		}

		number, err := strconv.Atoi(content[h[2]:h[3]])
		title := strings.TrimSpace(content[h[4]:h[5]])
		segment := content[segStart:segEnd]

		m := blockRe.FindStringSubmatch(segment)
		if m == nil || err != nil {
			res.Skipped = append(res.Skipped, Skipped{
				Line:    lineOf(content, h[0]),
				Heading: content[h[0]:h[1]],
			})
			continue
		}

		description := strings.TrimSpace(m[3])
		estimate := strings.TrimSpace(m[2])

		res.Issues = append(res.Issues, Issue{
			Number:             number,
			Title:              title,
			Labels:             splitLabels(m[1]),
			Phase:              PhaseFor(number),
			Estimate:           estimate,
			Description:        description,
			Tasks:              parseTasks(description),
			AcceptanceCriteria: parseCriteria(description),
			Body:               composeBody(description, estimate),
		})
	}

	return res
}

// splitLabels splits the raw labels text on commas, trimming whitespace and
// enclosing backticks. Order is preserved and duplicates are kept.
func splitLabels(raw string) []string {
	var labels []string
	for _, part := range strings.Split(raw, ",") {
		label := strings.Trim(strings.TrimSpace(part), "`")
		if label != "" {
			labels = append(labels, label)
		}
	}
	return labels
}

// parseTasks collects the trailing text of every unchecked checklist line,
// in document order.
func parseTasks(description string) []string {
	var tasks []string
	for _, m := range taskRe.FindAllStringSubmatch(description, -1) {
		tasks = append(tasks, m[1])
	}
	return tasks
}

// parseCriteria collects the list items of the acceptance criteria
// subsection, up to the next bold marker or end of text. A missing
// subsection yields nil.
func parseCriteria(description string) []string {
	loc := criteriaRe.FindStringIndex(description)
	if loc == nil {
		return nil
	}

	section := description[loc[1]:]
	if end := strings.Index(section, "**"); end >= 0 {
		section = section[:end]
	}

	var criteria []string
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "-") {
			continue
		}
		if entry := strings.Trim(line, "- "); entry != "" {
			criteria = append(criteria, entry)
		}
	}
	return criteria
}

// composeBody assembles the issue body: description, a horizontal rule,
// then the effort annotation, joined by blank lines.
func composeBody(description, estimate string) string {
	return strings.Join([]string{
		description,
		"---",
		"**Estimate:** " + estimate,
	}, "\n\n")
}

// lineOf returns the 1-based line number of a byte offset.
func lineOf(content string, offset int) int {
	return strings.Count(content[:offset], "\n") + 1
}
