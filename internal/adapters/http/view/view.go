// Package view renders the server-side HTML pages.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"horizonx-storefront/internal/logger"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	PageLogin      = "login.html"
	PageRegister   = "register.html"
	PageProducts   = "products.html"
	PageAddProduct = "add_product.html"
)

// Data is shared by every page; handlers fill only what they need.
type Data struct {
	Title         string
	CSRFToken     string
	Authenticated bool
	Flash         string
	Error         string
	Errors        map[string]string
	Form          any
	Products      any
}

type Renderer struct {
	pages map[string]*template.Template
	log   logger.Logger
}

func NewRenderer(log logger.Logger) (*Renderer, error) {
	pages := make(map[string]*template.Template)

	for _, page := range []string{PageLogin, PageRegister, PageProducts, PageAddProduct} {
		tmpl, err := template.New(page).ParseFS(templatesFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		pages[page] = tmpl
	}

	return &Renderer{pages: pages, log: log}, nil
}

// Render buffers the page so a template error still yields a clean 500.
func (v *Renderer) Render(w http.ResponseWriter, status int, page string, data *Data) {
	tmpl, ok := v.pages[page]
	if !ok {
		v.log.Error("view: unknown page", "page", page)
		http.Error(w, "Something went wrong. Please try again.", http.StatusInternalServerError)
		return
	}

	if data.Errors == nil {
		data.Errors = map[string]string{}
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		v.log.Error("view: render failed", "page", page, "error", err)
		http.Error(w, "Something went wrong. Please try again.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		v.log.Warn("view: write failed", "page", page, "error", err)
	}
}
