package artifact

import (
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"walker-generator/internal/emit"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Names holds the output file name for each document.
type Names struct {
	Nodes     string `yaml:"nodes"`
	Visit     string `yaml:"visit"`
	Mutate    string `yaml:"mutate"`
	Transform string `yaml:"transform"`
	Span      string `yaml:"span"`
}

// DefaultNames returns the conventional artifact file names.
func DefaultNames() Names {
	return Names{
		Nodes:     "nodes.go",
		Visit:     "visit.go",
		Mutate:    "mutate.go",
		Transform: "transform.go",
		Span:      "span.go",
	}
}

// Document is one rendered output file.
type Document struct {
	Name    string
	Content []byte
}

type docData struct {
	Package string
	Hooks   string
	Body    string
}

// Render assembles the five documents from the emission state and
// formats each with go/format. A formatting failure means the emitter
// produced invalid Go and is fatal.
func Render(st *emit.State, names Names) ([]Document, error) {
	parts := []struct {
		name  string
		tmpl  *template.Template
		hooks string
		body  string
	}{
		{names.Nodes, nodesTemplate, "", st.Nodes.String()},
		{names.Visit, visitTemplate, st.VisitHooks.String(), st.VisitBody.String()},
		{names.Mutate, mutateTemplate, st.MutateHooks.String(), st.MutateBody.String()},
		{names.Transform, transformTemplate, st.TransformHooks.String(), st.TransformBody.String()},
		{names.Span, spanTemplate, "", st.SpanBody.String()},
	}

	docs := make([]Document, 0, len(parts))
	for _, p := range parts {
		var b strings.Builder
		err := p.tmpl.Execute(&b, docData{
			Package: st.Package,
			Hooks:   p.hooks,
			Body:    p.body,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", p.name, err)
		}
		src, err := format.Source([]byte(b.String()))
		if err != nil {
			return nil, fmt.Errorf("generated %s does not parse: %w", p.name, err)
		}
		docs = append(docs, Document{Name: p.name, Content: src})
	}
	return docs, nil
}

// WriteFiles overwrites every document under dir. The first failure
// aborts; earlier documents stay on disk.
func WriteFiles(dir string, docs []Document) error {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	for _, doc := range docs {
		path := filepath.Join(dir, doc.Name)
		if err := os.WriteFile(path, doc.Content, filePerm); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	return nil
}
