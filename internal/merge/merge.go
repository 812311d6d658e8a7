// =============================================================================
// Outreach Merger - Merge Module
// =============================================================================
//
// This module substitutes row values into template placeholders. Templates
// contain flat {{token}} spans; there are no conditionals, loops, or nested
// expressions.
//
// MATCHING RULES:
//   - Token content is normalized exactly like a column header (lowercase,
//     spaces and underscores stripped), then looked up in the table's
//     canonical key map. "{{first_name}}" therefore matches a "First Name"
//     column.
//   - A token with no matching column substitutes to the empty string. This
//     is deliberate: outreach personalization must never block on incomplete
//     data, so there is no "missing placeholder" error.
//   - A blank cell substitutes to the configured blank fill (empty string by
//     default).
//   - An opening "{{" with no closing "}}" before the end of the template is
//     literal text from that point onward. No error is raised.
//   - Literal text outside tokens, including newlines, is copied unchanged.
//
// Substitution is built on valyala/fasttemplate, which scans for the tag
// delimiters without parsing an expression grammar and emits an unclosed
// start tag as literal text.
//
// =============================================================================

package merge

import (
	"io"
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/ginjaninja78/outreach-merger/internal/schema"
	"github.com/ginjaninja78/outreach-merger/internal/types"
)

// Tag delimiters for template placeholders.
const (
	startTag = "{{"
	endTag   = "}}"
)

// Merge produces the personalized string for one row. Placeholders resolve
// through keys (canonical key -> original column name, see schema.BuildKeyMap)
// against the row's cell values. Blank cells and unmatched placeholders
// resolve to the empty string.
func Merge(template string, row map[string]string, keys map[string]string) string {
	return MergeWithFill(template, row, keys, "")
}

// MergeWithFill is Merge with a configurable replacement for blank cells.
// A cell is blank when it is empty or contains only whitespace. Unmatched
// placeholders still resolve to the empty string, not to blankFill: the fill
// marks missing data in a known column, not a typo in the template.
func MergeWithFill(template string, row map[string]string, keys map[string]string, blankFill string) string {
	if !strings.Contains(template, startTag) {
		// No token attempts; the template is returned unchanged.
		return template
	}

	return fasttemplate.ExecuteFuncString(
		template, startTag, endTag,
		func(w io.Writer, tag string) (int, error) {
			column, ok := keys[schema.Normalize(tag)]
			if !ok {
				return 0, nil
			}

			value := row[column]
			if strings.TrimSpace(value) == "" {
				value = blankFill
			}

			return io.WriteString(w, value)
		},
	)
}

// =============================================================================
// ROW MERGING
// =============================================================================

// Row merges one row against every list in the template set and returns the
// row's MergeResult. rowIndex is the absolute 0-based index of the row in
// the source file; emailColumn is the original name of the email column, or
// "" when the source schema has none.
//
// The copy list must be non-empty (checked once, before any row, via
// TemplateSet.Validate); subject and chaser lists are skipped when empty.
func Row(rowIndex int, row map[string]string, keys map[string]string, set *TemplateSet, emailColumn, blankFill string) (types.MergeResult, error) {
	copyTpl, err := Resolve(rowIndex, set.Copy)
	if err != nil {
		return types.MergeResult{}, err
	}

	result := types.MergeResult{
		RowIndex: rowIndex,
		Copy:     MergeWithFill(copyTpl, row, keys, blankFill),
	}

	if emailColumn != "" {
		result.Email = row[emailColumn]
	}

	if len(set.Subject) > 0 {
		subjectTpl, err := Resolve(rowIndex, set.Subject)
		if err != nil {
			return types.MergeResult{}, err
		}
		result.Subject = MergeWithFill(subjectTpl, row, keys, blankFill)
	}

	if len(set.Chaser) > 0 {
		chaserTpl, err := Resolve(rowIndex, set.Chaser)
		if err != nil {
			return types.MergeResult{}, err
		}
		result.Chaser = MergeWithFill(chaserTpl, row, keys, blankFill)
	}

	return result, nil
}
