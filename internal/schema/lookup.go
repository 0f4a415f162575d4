package schema

import "sort"

// Lookup is the declaration table built by one extraction run.
//
// Iteration order is the total order on names, not insertion order, so
// repeated generation runs over the same input produce byte-identical
// output. Inserting a duplicate name overwrites the previous entry
// (last write wins, following file traversal order).
type Lookup struct {
	decls map[string]*Decl
}

// NewLookup creates an empty Lookup.
func NewLookup() *Lookup {
	return &Lookup{decls: make(map[string]*Decl)}
}

// Insert adds or replaces the declaration under its name.
func (l *Lookup) Insert(d *Decl) {
	l.decls[d.Name] = d
}

// Get returns the declaration for name, if present.
func (l *Lookup) Get(name string) (*Decl, bool) {
	d, ok := l.decls[name]
	return d, ok
}

// Names returns all declaration names in sorted order.
func (l *Lookup) Names() []string {
	names := make([]string, 0, len(l.decls))
	for name := range l.decls {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Len returns the number of declarations.
func (l *Lookup) Len() int {
	return len(l.decls)
}
