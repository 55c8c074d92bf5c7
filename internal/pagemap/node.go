// Package pagemap builds the hierarchical page map consumed by the generated
// page modules: a tree of folder, page, and meta nodes mirroring the pages
// directory, with locale tags and per-directory title metadata attached.
package pagemap

import "encoding/json"

// Kind discriminates page map node variants.
type Kind string

const (
	KindFolder Kind = "folder"
	KindPage   Kind = "page"
	KindMeta   Kind = "meta"
)

// Node is one entry of the page map tree. Implementations are Folder, Page,
// and Meta. All nodes are immutable values once returned by the builder.
type Node interface {
	Kind() Kind
	NodeName() string
}

// Folder groups the surviving children of one subdirectory. Folders with no
// surviving children are never emitted.
type Folder struct {
	Name     string
	Route    string
	Children []Node
}

func (f *Folder) Kind() Kind       { return KindFolder }
func (f *Folder) NodeName() string { return f.Name }

// Page is a single content file. Locale is empty for localeless files.
// FrontMatter is nil when the source file's front matter block is empty.
type Page struct {
	Name        string
	Route       string
	Locale      string
	FrontMatter map[string]any
}

func (p *Page) Kind() Kind       { return KindPage }
func (p *Page) NodeName() string { return p.Name }

// Meta carries one directory level's title/ordering metadata. Values in Data
// are either plain title strings or objects with at least a "title" field.
type Meta struct {
	Name   string
	Locale string
	Data   map[string]any
}

func (m *Meta) Kind() Kind       { return KindMeta }
func (m *Meta) NodeName() string { return m.Name }

// JSON shapes below are the serialization contract with the generated page
// modules; field order and omission rules are part of that contract.

func (f *Folder) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind     Kind   `json:"kind"`
		Name     string `json:"name"`
		Route    string `json:"route"`
		Children []Node `json:"children"`
	}{KindFolder, f.Name, f.Route, f.Children})
}

func (p *Page) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind        Kind           `json:"kind"`
		Name        string         `json:"name"`
		Route       string         `json:"route"`
		Locale      string         `json:"locale,omitempty"`
		FrontMatter map[string]any `json:"frontMatter,omitempty"`
	}{KindPage, p.Name, p.Route, p.Locale, p.FrontMatter})
}

func (m *Meta) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind   Kind           `json:"kind"`
		Name   string         `json:"name"`
		Meta   map[string]any `json:"meta"`
		Locale string         `json:"locale,omitempty"`
	}{KindMeta, m.Name, m.Data, m.Locale})
}
