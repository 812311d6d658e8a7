// =============================================================================
// Outreach Merger - Template Resolver Module
// =============================================================================
//
// This module implements deterministic round-robin template rotation. Given
// an ordered list of templates, row i receives templates[i mod len], so a
// four-row file merged against templates [A, B, C] produces A, B, C, A.
//
// Rotation is driven by the absolute row index in the original file. Chunked
// processing of large files must pass the absolute index, never the index
// within a chunk, so chunk boundaries cannot affect which template a row
// receives.
//
// =============================================================================

package merge

import "errors"

// ErrNoTemplates is the configuration error returned when a merge is
// attempted with an empty template list. It is surfaced before any row is
// processed and before any output is produced.
var ErrNoTemplates = errors.New("add at least one template before merging")

// Resolve selects the template for a row: templates[rowIndex mod length],
// 0-indexed. It fails only when templates is empty.
func Resolve(rowIndex int, templates []string) (string, error) {
	if len(templates) == 0 {
		return "", ErrNoTemplates
	}

	return templates[rowIndex%len(templates)], nil
}

// =============================================================================
// TEMPLATE SETS
// =============================================================================

// TemplateSet holds the ordered template lists for one merge operation.
// Each list rotates independently by absolute row index.
//
// Copy templates are always required. Subject templates are required only
// for the XLSX workbook output; chaser templates are always optional.
type TemplateSet struct {
	// Subject contains the subject line templates.
	Subject []string

	// Copy contains the email copy templates. This is the list behind the
	// "Email Copy" column of the CSV export.
	Copy []string

	// Chaser contains the optional follow-up copy templates.
	Chaser []string
}

// All returns every template in the set, in order: subjects, then copies,
// then chasers. Placeholder validation runs across all of them.
func (s *TemplateSet) All() []string {
	all := make([]string, 0, len(s.Subject)+len(s.Copy)+len(s.Chaser))
	all = append(all, s.Subject...)
	all = append(all, s.Copy...)
	all = append(all, s.Chaser...)
	return all
}

// Validate checks that the set can drive a merge. requireSubject is true
// for the XLSX workbook output, where each row also receives a subject line.
func (s *TemplateSet) Validate(requireSubject bool) error {
	if len(s.Copy) == 0 {
		return ErrNoTemplates
	}

	if requireSubject && len(s.Subject) == 0 {
		return ErrNoTemplates
	}

	return nil
}
