package artifact

import "text/template"

const banner = "// Code generated by walker-generator. DO NOT EDIT.\n"

var nodesTemplate = template.Must(template.New("nodes").Parse(banner + `
package {{.Package}}

{{.Body}}`))

var visitTemplate = template.Must(template.New("visit").Parse(banner + `
package {{.Package}}

// Visitor walks a tree read-only. Set a hook to intercept a node
// kind; a nil hook falls back to the default traversal.
type Visitor struct {
{{.Hooks}}}

{{.Body}}`))

var mutateTemplate = template.Must(template.New("mutate").Parse(banner + `
package {{.Package}}

// Mutator walks a tree letting hooks rewrite records in place.
// Containers keep their shape; only record contents change.
type Mutator struct {
{{.Hooks}}}

{{.Body}}`))

var transformTemplate = template.Must(template.New("transform").Parse(banner + `
package {{.Package}}

// Transformer rebuilds a tree bottom-up. A hook replaces the default
// reconstruction for its node kind.
type Transformer struct {
{{.Hooks}}}

// liftSlice rebuilds a slice element-wise, preserving nil.
func liftSlice[T any](in []T, f func(T) T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = f(v)
	}
	return out
}

// liftDelimited rebuilds a delimited list's items, leaving the
// separators untouched.
func liftDelimited[T, S any](in Delimited[T, S], f func(T) T) Delimited[T, S] {
	out := in
	out.Items = liftSlice(in.Items, f)
	return out
}

// full asserts the extended node set is enabled before an
// extended-only traversal runs.
func full(node string) {
	if !FullEnabled {
		panic("{{.Package}}: " + node + " requires the full feature set")
	}
}

{{.Body}}`))

var spanTemplate = template.Must(template.New("span").Parse(banner + `
package {{.Package}}

// spanAggregator rides the visitor's Span hook and joins every span
// it sees. The first hit initializes, later hits extend.
type spanAggregator struct {
	span Span
	seen bool
}

func (a *spanAggregator) visit(v *Visitor, node *Span) {
	if !a.seen {
		a.span = *node
		a.seen = true
		return
	}
	a.span = a.span.Join(*node)
}

{{.Body}}`))
