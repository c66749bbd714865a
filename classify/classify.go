// Package classify loads paragraph classification produced by external
// classifier.
package classify

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"docfmt/common"
)

// Entry assigns role to the paragraph with 1-based index.
type Entry struct {
	Index int         `yaml:"paragraph_number"`
	Role  common.Role `yaml:"type"`
}

// Classification is an ordered list of entries. Paragraphs which are not
// listed are unclassified.
type Classification []Entry

// role names used by classifier which differ from ours
var aliases = map[string]common.Role{
	"paragraph": common.RoleNormal,
	"body":      common.RoleNormal,
	"text":      common.RoleNormal,
	"caption":   common.RoleFigureCaption,
	"keywords":  common.RoleKeywordsCN,
	"abstract":  common.RoleAbstractContentCN,
}

// ParseRole converts classifier role name. Unknown names are reported as
// unclassified with ok set to false.
func ParseRole(name string) (common.Role, bool) {
	if r, err := common.ParseRoleName(name); err == nil {
		return r, true
	}
	if r, ok := aliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return r, true
	}
	return common.RoleUnclassified, false
}

type rawEntry struct {
	ParagraphNumber *int   `yaml:"paragraph_number"`
	ParagraphIndex  *int   `yaml:"paragraph_index"`
	Index           *int   `yaml:"index"`
	Type            string `yaml:"type"`
	Role            string `yaml:"role"`
}

func (r rawEntry) index() (int, bool) {
	for _, v := range []*int{r.ParagraphNumber, r.ParagraphIndex, r.Index} {
		if v != nil {
			return *v, true
		}
	}
	return 0, false
}

func (r rawEntry) role() string {
	if len(r.Type) > 0 {
		return r.Type
	}
	return r.Role
}

// Load reads classification file, see Parse.
func Load(path string) (Classification, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to read classification: %w", err)
	}
	c, warnings, err := Parse(data)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to parse classification (%s): %w", path, err)
	}
	return c, warnings, nil
}

// Parse decodes classification from JSON or YAML. Accepted shapes are list
// of objects ({"paragraph_number": 1, "type": "Title"}, also
// "paragraph_index"/"index" and "role" keys), the same list wrapped into
// "analysis_result" object, or mapping of indexes to roles ({"1": "Title"}).
// Unknown roles become unclassified and are reported in warnings.
func Parse(data []byte) (Classification, []string, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, nil, err
	}
	if root.Kind == 0 {
		return nil, nil, nil
	}
	node := &root
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}

	if node.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == "analysis_result" {
				node = node.Content[i+1]
				break
			}
		}
	}

	var (
		res      Classification
		warnings []string
	)
	add := func(index int, name string) {
		role, ok := ParseRole(name)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("paragraph %d: unknown role %q treated as unclassified", index, name))
		}
		res = append(res, Entry{Index: index, Role: role})
	}

	switch node.Kind {
	case yaml.SequenceNode:
		var raw []rawEntry
		if err := node.Decode(&raw); err != nil {
			return nil, nil, err
		}
		for i, r := range raw {
			index, ok := r.index()
			if !ok {
				return nil, nil, fmt.Errorf("entry %d has no paragraph number", i+1)
			}
			add(index, r.role())
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			k, v := node.Content[i], node.Content[i+1]
			index, err := strconv.Atoi(strings.TrimSpace(k.Value))
			if err != nil {
				return nil, nil, fmt.Errorf("line %d: paragraph number %q is not an integer", k.Line, k.Value)
			}
			if v.Kind != yaml.ScalarNode {
				return nil, nil, fmt.Errorf("line %d: role must be a string", v.Line)
			}
			add(index, v.Value)
		}
	default:
		return nil, nil, fmt.Errorf("unexpected classification format")
	}
	return res, warnings, nil
}

// Resolve returns role for every paragraph of the document: first-listed
// role wins for duplicated indexes, indexes outside of the document are
// dropped. Both cases are reported in warnings.
func (c Classification) Resolve(paragraphCount int) ([]common.Role, []string) {
	roles := make([]common.Role, paragraphCount)
	seen := make([]bool, paragraphCount)

	var warnings []string
	for _, e := range c {
		if e.Index < 1 || e.Index > paragraphCount {
			warnings = append(warnings, fmt.Sprintf("paragraph %d does not exist (document has %d), role %s ignored", e.Index, paragraphCount, e.Role))
			continue
		}
		i := e.Index - 1
		if seen[i] {
			if roles[i] != e.Role {
				warnings = append(warnings, fmt.Sprintf("paragraph %d is listed more than once, keeping %s and ignoring %s", e.Index, roles[i], e.Role))
			}
			continue
		}
		roles[i], seen[i] = e.Role, true
	}
	return roles, warnings
}

// Sorted returns copy of classification ordered by paragraph index, stable
// for duplicates.
func (c Classification) Sorted() Classification {
	res := slices.Clone(c)
	slices.SortStableFunc(res, func(a, b Entry) int { return a.Index - b.Index })
	return res
}
