package tabsplit_test

import (
	"testing"

	"github.com/fwojciec/tabsplit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSection_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		section tabsplit.Section
		wantErr bool
	}{
		{
			name:    "valid section",
			section: tabsplit.Section{ID: "overview", Title: "Framework Overview", ShortTitle: "Overview"},
		},
		{
			name:    "title is optional",
			section: tabsplit.Section{ID: "icons", ShortTitle: "Icons"},
		},
		{
			name:    "missing ID",
			section: tabsplit.Section{ShortTitle: "Overview"},
			wantErr: true,
		},
		{
			name:    "ID with path separator",
			section: tabsplit.Section{ID: "../etc", ShortTitle: "Escape"},
			wantErr: true,
		},
		{
			name:    "ID with space",
			section: tabsplit.Section{ID: "two words", ShortTitle: "Two"},
			wantErr: true,
		},
		{
			name:    "missing short title",
			section: tabsplit.Section{ID: "overview"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.section.Validate()

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tabsplit.EINVALID, tabsplit.ErrorCode(err))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestSection_DerivedStrings(t *testing.T) {
	t.Parallel()

	s := tabsplit.Section{ID: "layout", Title: "12-Column Grid System", ShortTitle: "Layout"}

	assert.Equal(t, "layout.html", s.FileName())
	assert.Equal(t, "Layout Demo | Framework Showcase", s.PageTitle("Framework Showcase"))
	assert.Equal(t, "Demo page showcasing 12-column grid system from the responsive CSS framework.", s.Description())
	assert.Equal(t, "CSS framework, responsive design, layout, design system, UI components", s.Keywords())
}

func TestSection_DescriptionFallsBackToShortTitle(t *testing.T) {
	t.Parallel()

	s := tabsplit.Section{ID: "icons", ShortTitle: "Icons"}

	assert.Equal(t, "Demo page showcasing icons from the responsive CSS framework.", s.Description())
}

func TestDefaultSections(t *testing.T) {
	t.Parallel()

	sections := tabsplit.DefaultSections()

	ids := make([]string, 0, len(sections))
	for _, s := range sections {
		require.NoError(t, s.Validate())
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{
		"overview", "components", "cards", "tokens", "layout",
		"accessibility", "typography", "icons", "utilities", "photos",
	}, ids)
}
