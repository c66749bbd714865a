package rebuild

import (
	"fmt"
	"slices"

	"docfmt/common"
	"docfmt/wml"
)

// StyleName returns deterministic name (and id) of the style generated for
// role. Prefix keeps generated styles apart from built-in ones.
func StyleName(role common.Role) string {
	return "custom" + string(role)
}

// Registry maintains generated styles of a document.
type Registry struct {
	doc    *wml.Document
	styles *wml.Styles
	ids    map[common.Role]string
}

func NewRegistry(doc *wml.Document) (*Registry, error) {
	styles, err := doc.Styles()
	if err != nil {
		return nil, fmt.Errorf("unable to access style table: %w", err)
	}
	return &Registry{doc: doc, styles: styles, ids: make(map[common.Role]string)}, nil
}

// EnsureStyle makes sure document has style for role formatted according to
// definition. Existing style is updated in place so calling it again with
// the same arguments does not change the style table. Missing font families
// are replaced with defaults and reported as warnings.
func (r *Registry) EnsureStyle(role common.Role, def StyleDefinition) (string, bool, []Warning) {
	var warns []Warning
	if len(def.Font.Latin) == 0 {
		def.Font.Latin = DefaultLatinFont
		warns = append(warns, warning(ConfigError, NoSection, "style %s: missing latin font family, using %q", role, DefaultLatinFont))
	}
	if len(def.Font.EastAsian) == 0 {
		def.Font.EastAsian = DefaultEastAsianFont
		warns = append(warns, warning(ConfigError, NoSection, "style %s: missing east asian font family, using %q", role, DefaultEastAsianFont))
	}

	name := StyleName(role)
	st, created := r.styles.EnsureParagraphStyle(name, name, "Normal")
	st.ResetProperties()
	wml.SetParagraphFormat(st.ParagraphProperties(), def.paragraphFormat())
	wml.SetRunFormat(st.RunProperties(), def.runFormat())

	r.ids[role] = st.ID()
	return st.ID(), created, warns
}

// StyleID returns id of the style ensured for role.
func (r *Registry) StyleID(role common.Role) (string, bool) {
	id, ok := r.ids[role]
	return id, ok
}

// Count returns size of document style table.
func (r *Registry) Count() int {
	return r.styles.Count()
}

// ApplyStyles assigns generated styles to paragraphs. Roles are indexed by
// paragraph position, unclassified paragraphs keep their style. Roles without
// configured style keep paragraph style too and are reported once per role.
func (r *Registry) ApplyStyles(roles []common.Role, paras []wml.ParaID) (int, []Warning) {
	var (
		applied int
		missing = make(map[common.Role][]int)
		warns   []Warning
	)

	for i, role := range roles {
		if role == common.RoleUnclassified || i >= len(paras) {
			continue
		}
		id, ok := r.ids[role]
		if !ok {
			missing[role] = append(missing[role], i+1)
			continue
		}
		if err := r.doc.SetStyle(paras[i], id); err != nil {
			warns = append(warns, warning(ConfigError, NoSection, "paragraph %d: unable to apply style %s: %v", i+1, id, err))
			continue
		}
		applied++
	}

	keys := make([]common.Role, 0, len(missing))
	for role := range missing {
		keys = append(keys, role)
	}
	slices.Sort(keys)
	for _, role := range keys {
		warns = append(warns, warning(ConfigError, NoSection,
			"role %s has no configured style, %d paragraph(s) left unchanged (first %d)", role, len(missing[role]), missing[role][0]))
	}
	return applied, warns
}
