package ooxml

import (
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Relationship is a single outgoing link of a part.
type Relationship struct {
	ID       string
	Type     string
	Target   string
	External bool
}

// Relationships gives access to the relationships part of a source part.
type Relationships struct {
	source string
	root   *etree.Element
}

// RelsPartName returns name of relationships part for the source part.
func RelsPartName(source string) string {
	if source == "" {
		return PackageRelsPart
	}
	return path.Join(path.Dir(source), "_rels", path.Base(source)+".rels")
}

// ResolveTarget returns part name the relative target of source part points
// to.
func ResolveTarget(source, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(path.Clean(target), "/")
	}
	return strings.TrimPrefix(path.Join(path.Dir(source), target), "/")
}

// RelativeTarget is the reverse of ResolveTarget for parts in the same or
// nested directory.
func RelativeTarget(source, name string) string {
	dir := path.Dir(source)
	if dir == "." {
		return name
	}
	if rel, ok := strings.CutPrefix(name, dir+"/"); ok {
		return rel
	}
	return "/" + name
}

// Relationships returns relationships of the source part, creating
// relationships part if necessary. Use empty source for package level
// relationships.
func (p *Package) Relationships(source string) (*Relationships, error) {
	name := RelsPartName(source)
	if !p.Has(name) {
		doc := NewXMLDocument()
		root := doc.CreateElement("Relationships")
		root.CreateAttr("xmlns", NSPackageRels)
		p.EnsureDefault("rels", TypeRelationships)
		p.PutXML(name, "", doc)
	}
	doc, err := p.XML(name)
	if err != nil {
		return nil, err
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("relationships part %q is empty", name)
	}
	return &Relationships{source: source, root: doc.Root()}, nil
}

// All returns every relationship in document order.
func (r *Relationships) All() []Relationship {
	els := r.root.SelectElements("Relationship")
	res := make([]Relationship, 0, len(els))
	for _, el := range els {
		res = append(res, Relationship{
			ID:       el.SelectAttrValue("Id", ""),
			Type:     el.SelectAttrValue("Type", ""),
			Target:   el.SelectAttrValue("Target", ""),
			External: el.SelectAttrValue("TargetMode", "") == "External",
		})
	}
	return res
}

// ByID looks relationship up.
func (r *Relationships) ByID(id string) (Relationship, bool) {
	for _, rel := range r.All() {
		if rel.ID == id {
			return rel, true
		}
	}
	return Relationship{}, false
}

// ByType returns all relationships of a given type.
func (r *Relationships) ByType(relType string) []Relationship {
	var res []Relationship
	for _, rel := range r.All() {
		if rel.Type == relType {
			res = append(res, rel)
		}
	}
	return res
}

// Part returns name of the part internal relationship points to.
func (r *Relationships) Part(rel Relationship) string {
	return ResolveTarget(r.source, rel.Target)
}

// Add creates new relationship returning its id.
func (r *Relationships) Add(relType, target string) string {
	last := 0
	for _, rel := range r.All() {
		if n, err := strconv.Atoi(strings.TrimPrefix(rel.ID, "rId")); err == nil && n > last {
			last = n
		}
	}
	id := "rId" + strconv.Itoa(last+1)

	el := r.root.CreateElement("Relationship")
	el.CreateAttr("Id", id)
	el.CreateAttr("Type", relType)
	el.CreateAttr("Target", target)
	return id
}

// Remove deletes relationship.
func (r *Relationships) Remove(id string) {
	for _, el := range r.root.SelectElements("Relationship") {
		if el.SelectAttrValue("Id", "") == id {
			r.root.RemoveChild(el)
		}
	}
}
