package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCode(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantErr bool
	}{
		{"simple", "P001", false},
		{"hierarchical", "P001-01", false},
		{"deep", "P001-01-03", false},
		{"lowercase ok", "p001-x2", false},
		{"empty", "", true},
		{"trailing dash", "P001-", true},
		{"spaces", "P 001", true},
		{"underscore", "P_001", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Project{Code: tt.code}
			err := p.ValidateCode()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateHierarchy(t *testing.T) {
	parentID := "parent-id"

	t.Run("root must not have parent", func(t *testing.T) {
		p := &Project{Code: "P001", Level: 0, ParentID: &parentID}
		assert.Error(t, p.ValidateHierarchy(nil))
	})

	t.Run("root without parent ok", func(t *testing.T) {
		p := &Project{Code: "P001", Level: 0}
		assert.NoError(t, p.ValidateHierarchy(nil))
	})

	t.Run("child requires parent one level up", func(t *testing.T) {
		parent := &Project{ID: parentID, Code: "P001", Level: 0}
		p := &Project{Code: "P001-01", Level: 1, ParentID: &parentID}
		require.NoError(t, p.ValidateHierarchy(parent))

		p.Level = 2
		assert.Error(t, p.ValidateHierarchy(parent))
	})

	t.Run("child without parent rejected", func(t *testing.T) {
		p := &Project{Code: "P001-01", Level: 1}
		assert.Error(t, p.ValidateHierarchy(nil))
	})

	t.Run("level out of range", func(t *testing.T) {
		p := &Project{Code: "P001", Level: MaxProjectLevel + 1}
		assert.Error(t, p.ValidateHierarchy(nil))
	})
}

func TestMemberValidateDates(t *testing.T) {
	start := "2025-04-01"
	end := "2025-03-31"
	okEnd := "2026-03-31"

	m := &Member{Name: "Sato", StartDate: &start, EndDate: &okEnd}
	assert.NoError(t, m.ValidateDates())

	m.EndDate = &end
	assert.Error(t, m.ValidateDates())

	m.EndDate = nil
	assert.NoError(t, m.ValidateDates())

	m.StartDate = nil
	assert.NoError(t, m.ValidateDates())
}
