// =============================================================================
// Outreach Merger - Placeholder Validation Module
// =============================================================================
//
// This module checks template placeholders against a spreadsheet's headers
// before a merge: every {{token}} across every template is normalized and
// looked up in the table's canonical key map, and tokens with no matching
// column are reported.
//
// Validation is a REPORT, not a gate. The merge itself never fails on an
// unmapped placeholder; it substitutes the empty string and moves on. The
// report exists so the 'validate' command can catch template typos before a
// campaign goes out.
//
// =============================================================================

package validation

import (
	"fmt"
	"strings"
)

// Normalizer converts a header or placeholder name to its canonical lookup
// key. It is satisfied by schema.Normalize.
type Normalizer func(string) string

// Issue is a single unmapped placeholder found during validation.
type Issue struct {
	// Placeholder is the raw token content as written in the template,
	// without the surrounding braces.
	Placeholder string

	// TemplateIndex is the 0-based index of the template (across all
	// template lists, in subject/copy/chaser order) where the placeholder
	// first appeared.
	TemplateIndex int
}

// Error formats the issue the way it is shown to the user.
func (i *Issue) Error() string {
	return fmt.Sprintf("unmapped placeholder {{%s}} (template %d): no column header matches (matching is case-insensitive and ignores spaces/underscores)", i.Placeholder, i.TemplateIndex+1)
}

// ExtractPlaceholders returns the raw token contents of every well-formed
// {{...}} span in the template, in order of appearance. An opening "{{"
// with no closing "}}" ends the scan: the remainder is literal text, the
// same rule the merge applies.
func ExtractPlaceholders(template string) []string {
	var placeholders []string

	for {
		open := strings.Index(template, "{{")
		if open < 0 {
			return placeholders
		}

		rest := template[open+2:]
		end := strings.Index(rest, "}}")
		if end < 0 {
			return placeholders
		}

		placeholders = append(placeholders, rest[:end])
		template = rest[end+2:]
	}
}

// ValidateTemplates scans all templates and reports placeholders whose
// canonical key matches no column. keys is the canonical key map built from
// the table's headers (schema.BuildKeyMap). Duplicate reports for the same
// raw placeholder are collapsed, preserving first-appearance order.
func ValidateTemplates(templates []string, keys map[string]string, normalize Normalizer) []*Issue {
	var issues []*Issue
	seen := make(map[string]bool)

	for idx, template := range templates {
		for _, placeholder := range ExtractPlaceholders(template) {
			if _, ok := keys[normalize(placeholder)]; ok {
				continue
			}
			if seen[placeholder] {
				continue
			}
			seen[placeholder] = true
			issues = append(issues, &Issue{
				Placeholder:   placeholder,
				TemplateIndex: idx,
			})
		}
	}

	return issues
}

// FormatIssues renders the issues as a block of text for the CLI, one line
// per issue.
func FormatIssues(issues []*Issue) string {
	if len(issues) == 0 {
		return "All placeholders map to a column header."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d unmapped placeholder(s):\n", len(issues)))
	for _, issue := range issues {
		sb.WriteString("  - ")
		sb.WriteString(issue.Error())
		sb.WriteString("\n")
	}

	return sb.String()
}
