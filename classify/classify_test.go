package classify

import (
	"os"
	"path/filepath"
	"testing"

	"docfmt/common"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		want     Classification
		warnings int
	}{
		{
			name: "analyzer list",
			data: `[{"paragraph_number": 1, "type": "Title", "confidence": 0.9}, {"paragraph_number": 2, "type": "Heading1"}]`,
			want: Classification{{1, common.RoleTitle}, {2, common.RoleHeading1}},
		},
		{
			name: "wrapped list",
			data: `{"analysis_result": [{"paragraph_number": 3, "type": "paragraph", "reason": "body text"}]}`,
			want: Classification{{3, common.RoleNormal}},
		},
		{
			name: "alias keys",
			data: `[{"paragraph_index": 4, "role": "heading2"}, {"index": 5, "role": "FigureCaption"}]`,
			want: Classification{{4, common.RoleHeading2}, {5, common.RoleFigureCaption}},
		},
		{
			name: "mapping",
			data: `{"1": "Title", "2": "AbstractTitleCN", "10": "ReferenceItem"}`,
			want: Classification{{1, common.RoleTitle}, {2, common.RoleAbstractTitleCN}, {10, common.RoleReferenceItem}},
		},
		{
			name: "yaml mapping",
			data: "1: Title\n2: Heading 1\n",
			want: Classification{{1, common.RoleTitle}, {2, common.RoleHeading1}},
		},
		{
			name:     "unknown role",
			data:     `{"1": "Poem"}`,
			want:     Classification{{1, common.RoleUnclassified}},
			warnings: 1,
		},
		{
			name: "empty",
			data: ``,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, warnings, err := Parse([]byte(tt.data))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if len(warnings) != tt.warnings {
				t.Errorf("warnings = %v, want %d", warnings, tt.warnings)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Parse() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("entry %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	for name, data := range map[string]string{
		"not yaml":       `[{"paragraph_number": 1`,
		"bad index":      `{"one": "Title"}`,
		"no index":       `[{"type": "Title"}]`,
		"nested role":    `{"1": ["Title"]}`,
		"scalar":         `"Title"`,
		"non int number": `[{"paragraph_number": "x", "type": "Title"}]`,
	} {
		t.Run(name, func(t *testing.T) {
			if _, _, err := Parse([]byte(data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.classification.json")
	if err := os.WriteFile(path, []byte(`[{"paragraph_number": 1, "type": "Title"}]`), 0644); err != nil {
		t.Fatal(err)
	}
	c, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(c) != 1 || c[0].Role != common.RoleTitle {
		t.Errorf("Load() = %v", c)
	}
	if _, _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestResolve(t *testing.T) {
	c := Classification{
		{1, common.RoleTitle},
		{2, common.RoleHeading1},
		{2, common.RoleNormal},
		{2, common.RoleHeading1},
		{5, common.RoleNormal},
		{0, common.RoleNormal},
	}
	roles, warnings := c.Resolve(3)

	want := []common.Role{common.RoleTitle, common.RoleHeading1, common.RoleUnclassified}
	for i := range want {
		if roles[i] != want[i] {
			t.Errorf("role[%d] = %s, want %s", i, roles[i], want[i])
		}
	}
	// duplicate with different role, two out of range indexes
	if len(warnings) != 3 {
		t.Errorf("warnings = %v", warnings)
	}
}

func TestSorted(t *testing.T) {
	c := Classification{{3, common.RoleNormal}, {1, common.RoleTitle}, {3, common.RoleQuote}}
	s := c.Sorted()
	if s[0].Index != 1 || s[1].Role != common.RoleNormal || s[2].Role != common.RoleQuote {
		t.Errorf("Sorted() = %v", s)
	}
	if c[0].Index != 3 {
		t.Error("Sorted() must not modify receiver")
	}
}
