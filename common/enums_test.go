package common

import (
	"errors"
	"testing"
)

func TestParseRoleName(t *testing.T) {
	tests := []struct {
		input     string
		expected  Role
		shouldErr bool
	}{
		{"Heading1", RoleHeading1, false},
		{"Heading 2", RoleHeading2, false},
		{"  heading 3 ", RoleHeading3, false},
		{"TOCTITLE", RoleTOCTitle, false},
		{"abstractcontentcn", RoleAbstractContentCN, false},
		{"Poem", RoleUnclassified, true},
		{"", RoleUnclassified, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRoleName(tt.input)
			if tt.shouldErr {
				if !errors.Is(err, ErrInvalidRole) {
					t.Errorf("ParseRoleName(%q) error = %v, want ErrInvalidRole", tt.input, err)
				}
				return
			}
			if err != nil || got != tt.expected {
				t.Errorf("ParseRoleName(%q) = %q, %v, want %q", tt.input, got, err, tt.expected)
			}
		})
	}
}

func TestRole_HeadingLevel(t *testing.T) {
	tests := map[Role]int{
		RoleHeading1:      1,
		RoleHeading9:      9,
		RoleTitle:         0,
		RoleUnclassified:  0,
		Role("Heading10"): 0,
	}
	for role, want := range tests {
		if got := role.HeadingLevel(); got != want {
			t.Errorf("%q.HeadingLevel() = %d, want %d", role, got, want)
		}
	}
	if RoleUnclassified.IsValid() || !RoleHeading1.IsValid() {
		t.Error("IsValid() is wrong")
	}
	if names := RoleNames(); len(names) != 44 || names[0] != "Title" {
		t.Errorf("RoleNames() = %d names", len(names))
	}
}
