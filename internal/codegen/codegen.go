// Package codegen renders the generated page and router-entry modules that
// wire the page map, layout, and localization glue into the consuming build.
package codegen

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/pagemill/pagemill/internal/errors"
)

var funcs = template.FuncMap{
	// ident turns a locale tag into a safe JS identifier fragment.
	"ident": func(tag string) string { return strings.ReplaceAll(tag, "-", "_") },
}

var pageTpl = template.Must(template.New("page").Funcs(funcs).Parse(`// Generated by pagemill. DO NOT EDIT.
import withLayout from '{{ .LayoutImport }}'

export const pageOpts = {
  route: {{ .Route }},
  title: {{ .Title }},
  frontMatter: {{ .FrontMatter }},
  pageMap: {{ .PageMap }}{{ if .Timestamp }},
  timestamp: {{ .Timestamp }}{{ end }}
}

export default withLayout(pageOpts)
`))

var routerTpl = template.Must(template.New("router").Funcs(funcs).Parse(`// Generated by pagemill. DO NOT EDIT.
import { useRouter } from 'next/router'
{{- range .Entries }}
import Page_{{ ident .Locale }} from './{{ .Name }}'
{{- if .SSG }}
import { getStaticProps as getStaticProps_{{ ident .Locale }} } from './{{ .Name }}'
{{- end }}
{{- if .SSR }}
import { getServerSideProps as getServerSideProps_{{ ident .Locale }} } from './{{ .Name }}'
{{- end }}
{{- end }}
{{ if .SSG }}
export async function getStaticProps(context) {
  const hooks = {
{{- range .Entries }}
{{- if .SSG }}
    '{{ .Locale }}': getStaticProps_{{ ident .Locale }},
{{- end }}
{{- end }}
  }
  const hook = hooks[context.locale]
  return hook ? hook(context) : { props: {} }
}
{{ end }}
{{- if .SSR }}
export async function getServerSideProps(context) {
  const hooks = {
{{- range .Entries }}
{{- if .SSR }}
    '{{ .Locale }}': getServerSideProps_{{ ident .Locale }},
{{- end }}
{{- end }}
  }
  const hook = hooks[context.locale]
  return hook ? hook(context) : { props: {} }
}
{{ end }}
export default function LocalizedPage(props) {
  const { locale } = useRouter()
  switch (locale) {
{{- range .Entries }}
  case '{{ .Locale }}':
    return <Page_{{ ident .Locale }} {...props} />
{{- end }}
  default:
    return <Page_{{ ident .Default.Locale }} {...props} />
  }
}
`))

// PageModule is the data for one generated content page wrapper. The JSON
// payload fields (Route, Title, FrontMatter, PageMap) are pre-serialized by
// the caller; this layer is purely textual.
type PageModule struct {
	LayoutImport string
	Route        string
	Title        string
	FrontMatter  string
	PageMap      string
	Timestamp    int64
}

// RouterEntry is one locale variant feeding a generated router module.
type RouterEntry struct {
	Name   string
	Locale string
	SSG    bool
	SSR    bool
}

// RouterModule is the data for one generated locale-dispatch module.
type RouterModule struct {
	Entries      []RouterEntry
	DefaultIndex int
	SSG          bool
	SSR          bool
}

// Default returns the entry used when no locale matches at runtime.
func (r RouterModule) Default() RouterEntry {
	if r.DefaultIndex >= 0 && r.DefaultIndex < len(r.Entries) {
		return r.Entries[r.DefaultIndex]
	}
	return RouterEntry{}
}

// RenderPage renders the page module source.
func RenderPage(data PageModule) (string, error) {
	var buf bytes.Buffer
	if err := pageTpl.Execute(&buf, data); err != nil {
		return "", errors.CodegenFailed("page", err)
	}
	return buf.String(), nil
}

// RenderRouter renders the locale dispatch module source.
func RenderRouter(data RouterModule) (string, error) {
	var buf bytes.Buffer
	if err := routerTpl.Execute(&buf, data); err != nil {
		return "", errors.CodegenFailed("router", err)
	}
	return buf.String(), nil
}
