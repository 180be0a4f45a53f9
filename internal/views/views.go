// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package views renders the journal's HTML pages and serves its static
// assets. Templates and assets are embedded into the binary.
//
// Every page template is parsed together with the shared partials in
// templates/partials and executed by its file name. Post bodies are
// sanitised with a bluemonday UGC policy before they reach a template.
package views

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-journal/models"
	"github.com/microcosm-cc/bluemonday"
)

// Page names accepted by Render.
const (
	PageGettingStarted = "gettingStarted"
	PageHome           = "home"
	PageAbout          = "about"
	PageCompose        = "compose"
	PageLogin          = "login"
	PageRegister       = "register"
	PagePost           = "post"
)

// ExcerptLength is the number of characters of a post shown on the home page.
const ExcerptLength = 100

var ErrUnknownPage = errors.New("unknown page")

//go:embed templates
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

var pages = []string{
	PageGettingStarted,
	PageHome,
	PageAbout,
	PageCompose,
	PageLogin,
	PageRegister,
	PagePost,
}

// PageData is the value passed to every page template.
type PageData struct {
	AppName       string
	Title         string
	Authenticated bool
	GoogleEnabled bool

	Posts []PostView
	Post  PostView

	Version     string
	BuildDate   string
	BuildCommit string
}

// PostView is a post prepared for rendering.
type PostView struct {
	Title string
	// Content is the sanitised body.
	Content template.HTML
	// Excerpt is the plain-text beginning of the body.
	Excerpt string
}

// Renderer executes the embedded page templates.
type Renderer struct {
	templates map[string]*template.Template
	ugc       *bluemonday.Policy
	strict    *bluemonday.Policy
}

// NewRenderer parses every page template. It fails only if an embedded
// template is malformed.
func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"postURL": PostURL,
	}

	r := &Renderer{
		templates: make(map[string]*template.Template, len(pages)),
		ugc:       bluemonday.UGCPolicy(),
		strict:    bluemonday.StrictPolicy(),
	}

	for _, page := range pages {
		tmpl, err := template.New(page).Funcs(funcs).ParseFS(templatesFS,
			"templates/partials/*.html",
			"templates/"+page+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("error parsing %s template: %w", page, err)
		}
		r.templates[page] = tmpl
	}

	return r, nil
}

// Render executes page into w with the given status. Output is buffered so
// a failing template never produces a partial response.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data PageData) error {
	tmpl, ok := r.templates[page]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPage, page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, page+".html", data); err != nil {
		return fmt.Errorf("error executing %s template: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// NewPostView sanitises post for rendering.
func (r *Renderer) NewPostView(post models.Post) PostView {
	return PostView{
		Title:   post.Title,
		Content: template.HTML(r.ugc.Sanitize(post.Content)),
		Excerpt: excerpt(html.UnescapeString(r.strict.Sanitize(post.Content)), ExcerptLength),
	}
}

// NewPostViews sanitises posts preserving their order.
func (r *Renderer) NewPostViews(posts models.Posts) []PostView {
	views := make([]PostView, 0, len(posts))
	for _, p := range posts {
		views = append(views, r.NewPostView(p))
	}
	return views
}

// PostURL returns the path of the post titled title.
func PostURL(title string) string {
	return "/posts/" + url.PathEscape(title)
}

// StaticHandler serves the embedded assets. Mount it under /static/.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

func excerpt(text string, n int) string {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) <= n {
		return text
	}

	runes := []rune(text)
	return strings.TrimSpace(string(runes[:n])) + "..."
}
