// Package screen holds the builders that named routes resolve to.
package screen

import (
	"maps"

	"github.com/bnema/riblet/internal/domain/rib"
	"github.com/bnema/riblet/internal/domain/route"
)

// Builder names accepted in route configuration.
const (
	PageBuilderName    = "page"
	WebViewBuilderName = "webview"
)

// PageView is the view handle of a native page unit.
type PageView struct {
	Title  string
	Target string
	Params route.Params
}

// WebView is the view handle of an in-app web view unit.
type WebView struct {
	URL string
}

// PageBuilder builds native page units for one matched target.
type PageBuilder struct {
	match route.Match
}

// NewPageBuilder is a route.BuilderFactory.
func NewPageBuilder(m route.Match) rib.Builder {
	return &PageBuilder{match: m}
}

// Build returns a new page unit on every call.
func (b *PageBuilder) Build() *rib.Riblet {
	unit := rib.New(b)
	view := PageView{Target: b.match.Canonical, Params: maps.Clone(b.match.Params)}
	if b.match.Entry != nil {
		view.Title = b.match.Entry.Name
	}
	unit.View = view
	return unit
}

// WebViewBuilder builds in-app web view units.
type WebViewBuilder struct {
	url string
}

// NewWebViewBuilder is a route.BuilderFactory.
func NewWebViewBuilder(m route.Match) rib.Builder {
	return &WebViewBuilder{url: m.Canonical}
}

// Build returns a new web view unit on every call.
func (b *WebViewBuilder) Build() *rib.Riblet {
	unit := rib.New(b)
	unit.View = WebView{URL: b.url}
	return unit
}

// Register adds the built-in builders to reg.
func Register(reg *route.Registry) *route.Registry {
	return reg.
		Register(PageBuilderName, NewPageBuilder).
		Register(WebViewBuilderName, NewWebViewBuilder)
}
