package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/outreach-merger/internal/schema"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"spaces", "First Name", "firstname"},
		{"underscores", "first_name", "firstname"},
		{"all caps", "FIRSTNAME", "firstname"},
		{"mixed separators", "First_ Name", "firstname"},
		{"leading and trailing space", "  Niche  ", "niche"},
		{"already canonical", "email", "email"},
		{"empty", "", ""},
		{"only separators", " _ _ ", ""},
		{"digits preserved", "Address Line 2", "addressline2"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, schema.Normalize(tt.header))
		})
	}
}

func TestNormalize_equivalence(t *testing.T) {
	t.Parallel()

	// Headers normalize to the same key iff they are equal ignoring case,
	// spaces, and underscores.
	assert.Equal(t, schema.Normalize("First Name"), schema.Normalize("first_name"))
	assert.Equal(t, schema.Normalize("First Name"), schema.Normalize("FIRSTNAME"))
	assert.NotEqual(t, schema.Normalize("First Name"), schema.Normalize("First-Name"))
	assert.NotEqual(t, schema.Normalize("FirstName"), schema.Normalize("First Names"))
}

func TestBuildKeyMap(t *testing.T) {
	t.Parallel()

	keys := schema.BuildKeyMap([]string{"First Name", "Niche", "Email"})

	assert.Equal(t, map[string]string{
		"firstname": "First Name",
		"niche":     "Niche",
		"email":     "Email",
	}, keys)
}

func TestBuildKeyMap_duplicate_headers_last_wins(t *testing.T) {
	t.Parallel()

	// "First Name" and "first_name" collide on "firstname"; the later
	// column wins.
	keys := schema.BuildKeyMap([]string{"First Name", "first_name", "Email"})

	assert.Equal(t, "first_name", keys["firstname"])
}

func TestFindEmailColumn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers []string
		want    string
		found   bool
	}{
		{"plain", []string{"First Name", "Email"}, "Email", true},
		{"caps", []string{"EMAIL", "Niche"}, "EMAIL", true},
		{"separated", []string{"e_mail", "Niche"}, "e_mail", true},
		{"spaced", []string{"E Mail"}, "E Mail", true},
		{"absent", []string{"First Name", "Niche"}, "", false},
		{"substring is not a match", []string{"Email Address"}, "", false},
		{"duplicates last wins", []string{"Email", "E_MAIL"}, "E_MAIL", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			column, found := schema.FindEmailColumn(tt.headers)
			require.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, column)
		})
	}
}
