// Package pages renders the public landing page and serves the admin shell.
// Both are embedded at compile time.
package pages

import (
	"embed"
	"fmt"
	htmltemplate "html/template"
	"io"
	texttemplate "text/template"

	"github.com/tidwall/gjson"
)

//go:embed templates/*.html
var templateFS embed.FS

// ContentType is sent with both pages.
const ContentType = "text/html;charset=UTF-8"

// PublicView carries the eight site config fields into the public page.
type PublicView struct {
	SiteTitle    string
	HeroTitle    string
	HeroDesc     string
	LogoURL      string
	BgURL        string
	VideoPoster  string
	VideoURL     string
	DownloadLink string
}

// executor is satisfied by both *text/template.Template and *html/template.Template.
type executor interface {
	Execute(w io.Writer, data any) error
}

// Renderer produces the two HTML pages.
type Renderer struct {
	public executor
	admin  []byte
}

// NewRenderer parses the embedded pages. With escapeHTML false, stored values are
// written into the public page verbatim, markup included. With escapeHTML true they
// go through html/template's contextual escaping.
func NewRenderer(escapeHTML bool) (*Renderer, error) {
	var (
		public executor
		err    error
	)
	if escapeHTML {
		public, err = htmltemplate.ParseFS(templateFS, "templates/public.html")
	} else {
		public, err = texttemplate.ParseFS(templateFS, "templates/public.html")
	}
	if err != nil {
		return nil, fmt.Errorf("parsing template public.html: %w", err)
	}

	admin, err := templateFS.ReadFile("templates/admin.html")
	if err != nil {
		return nil, fmt.Errorf("reading admin.html: %w", err)
	}
	return &Renderer{public: public, admin: admin}, nil
}

// RenderPublic writes the landing page for the raw site config document doc.
func (r *Renderer) RenderPublic(w io.Writer, doc []byte) error {
	return r.public.Execute(w, NewPublicView(doc))
}

// Admin returns the static admin shell.
func (r *Renderer) Admin() []byte {
	return r.admin
}

// NewPublicView pulls the page fields out of doc by name. A missing field is empty;
// a non-string value is shown as its JSON text.
func NewPublicView(doc []byte) PublicView {
	field := func(name string) string {
		res := gjson.GetBytes(doc, name)
		switch {
		case !res.Exists():
			return ""
		case res.Type == gjson.String:
			return res.Str
		default:
			return res.Raw
		}
	}
	return PublicView{
		SiteTitle:    field("siteTitle"),
		HeroTitle:    field("heroTitle"),
		HeroDesc:     field("heroDesc"),
		LogoURL:      field("logoUrl"),
		BgURL:        field("bgUrl"),
		VideoPoster:  field("videoPoster"),
		VideoURL:     field("videoUrl"),
		DownloadLink: field("downloadLink"),
	}
}
