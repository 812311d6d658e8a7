package merge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/outreach-merger/internal/merge"
)

func TestResolve_rotation(t *testing.T) {
	t.Parallel()

	templates := []string{"A", "B", "C"}

	// 4 rows against 3 templates: A, B, C, A.
	got := make([]string, 0, 4)
	for i := 0; i < 4; i++ {
		tpl, err := merge.Resolve(i, templates)
		require.NoError(t, err)
		got = append(got, tpl)
	}

	assert.Equal(t, []string{"A", "B", "C", "A"}, got)
}

func TestResolve_modulo_property(t *testing.T) {
	t.Parallel()

	templates := []string{"A", "B", "C", "D", "E"}

	for i := 0; i < 50; i++ {
		tpl, err := merge.Resolve(i, templates)
		require.NoError(t, err)
		assert.Equal(t, templates[i%len(templates)], tpl)
	}
}

func TestResolve_single_template(t *testing.T) {
	t.Parallel()

	for i := 0; i < 5; i++ {
		tpl, err := merge.Resolve(i, []string{"only"})
		require.NoError(t, err)
		assert.Equal(t, "only", tpl)
	}
}

func TestResolve_empty_templates(t *testing.T) {
	t.Parallel()

	_, err := merge.Resolve(0, nil)
	require.ErrorIs(t, err, merge.ErrNoTemplates)

	_, err = merge.Resolve(3, []string{})
	require.ErrorIs(t, err, merge.ErrNoTemplates)
}

func TestTemplateSet_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		set            merge.TemplateSet
		requireSubject bool
		wantErr        bool
	}{
		{
			name:    "copy only is enough for csv",
			set:     merge.TemplateSet{Copy: []string{"A"}},
			wantErr: false,
		},
		{
			name:    "empty copy fails",
			set:     merge.TemplateSet{Subject: []string{"S"}},
			wantErr: true,
		},
		{
			name:           "xlsx requires subject",
			set:            merge.TemplateSet{Copy: []string{"A"}},
			requireSubject: true,
			wantErr:        true,
		},
		{
			name:           "xlsx with subject and copy",
			set:            merge.TemplateSet{Subject: []string{"S"}, Copy: []string{"A"}},
			requireSubject: true,
			wantErr:        false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.set.Validate(tt.requireSubject)
			if tt.wantErr {
				require.ErrorIs(t, err, merge.ErrNoTemplates)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestTemplateSet_All_order(t *testing.T) {
	t.Parallel()

	set := merge.TemplateSet{
		Subject: []string{"S1", "S2"},
		Copy:    []string{"C1"},
		Chaser:  []string{"F1"},
	}

	assert.Equal(t, []string{"S1", "S2", "C1", "F1"}, set.All())
}
