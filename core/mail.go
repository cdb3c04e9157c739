package core

import (
	"bytes"
	htmltmpl "html/template"
	"io/fs"
	"net/mail"
	"path"
	"strings"
	"sync"
	texttmpl "text/template"

	"github.com/pkg/errors"
)

type (
	EmailMessage struct {
		To      []mail.Address
		Subject string
		BodyStr string // simple text/plain, non-templated content

		// templated contents
		TemplateName string // without ext
		TemplateData interface{}
		TextContent  string
		HTMLContent  string
	}

	ContextData struct {
		FrontendBaseURL string
		Data            interface{}
	}

	// EmailService is any service that can send emails
	EmailService interface {
		// SendMessages sends messages concurrently
		SendMessages(messages ...*EmailMessage)
	}

	// EmailRenderer renders templated messages from a set of `<name>.txt` / `<name>.gohtml`
	// templates, each extending `_base.txt` / `_base.gohtml`.
	EmailRenderer struct {
		fsys            fs.FS
		frontendBaseURL string
		strict          bool

		once sync.Once
		err  error
		text map[string]*texttmpl.Template
		html map[string]*htmltmpl.Template
	}
)

func NewEmailRenderer(fsys fs.FS, conf *Config) *EmailRenderer {
	return &EmailRenderer{
		fsys:            fsys,
		frontendBaseURL: conf.FrontendBaseURL,
		strict:          conf.Debug || conf.TestMode,
	}
}

func (m *EmailMessage) HasRecipients() bool { return len(m.To) > 0 }
func (m *EmailMessage) HasContent() bool    { return (m.TextContent != "") || (m.HTMLContent != "") }

// Render fills TextContent and HTMLContent. Missing templates are not an error.
func (r *EmailRenderer) Render(m *EmailMessage) error {
	if m.BodyStr != "" {
		m.TextContent = m.BodyStr
	}
	if m.TemplateName == "" {
		return nil
	}

	r.once.Do(r.parse) // only parse once, on first use
	if r.err != nil {
		return r.err
	}

	data := ContextData{FrontendBaseURL: r.frontendBaseURL, Data: m.TemplateData}
	if tmpl, ok := r.text[m.TemplateName]; ok && m.TextContent == "" {
		var buff bytes.Buffer
		if err := tmpl.ExecuteTemplate(&buff, "base", data); err != nil {
			return errors.Wrapf(err, "rendering %s.txt", m.TemplateName)
		}
		m.TextContent = buff.String()
	}
	if tmpl, ok := r.html[m.TemplateName]; ok {
		var buff bytes.Buffer
		if err := tmpl.ExecuteTemplate(&buff, "base", data); err != nil {
			return errors.Wrapf(err, "rendering %s.gohtml", m.TemplateName)
		}
		m.HTMLContent = buff.String()
	}
	return nil
}

func (r *EmailRenderer) parse() {
	r.text = make(map[string]*texttmpl.Template)
	r.html = make(map[string]*htmltmpl.Template)

	fps, err := fs.Glob(r.fsys, "*")
	if err != nil {
		r.err = errors.Wrap(err, "listing email templates")
		return
	}

	for _, fp := range fps {
		ext := path.Ext(fp)
		if strings.HasPrefix(fp, "_") || !(ext == ".txt" || ext == ".gohtml") {
			continue
		}
		name := strings.TrimSuffix(fp, ext)
		if ext == ".txt" {
			tmpl, err := texttmpl.ParseFS(r.fsys, "_base.txt", fp)
			if err != nil {
				r.err = errors.Wrapf(err, "parsing %s", fp)
				return
			}
			if r.strict {
				tmpl = tmpl.Option("missingkey=error")
			}
			r.text[name] = tmpl
		} else {
			tmpl, err := htmltmpl.ParseFS(r.fsys, "_base.gohtml", fp)
			if err != nil {
				r.err = errors.Wrapf(err, "parsing %s", fp)
				return
			}
			if r.strict {
				tmpl = tmpl.Option("missingkey=error")
			}
			r.html[name] = tmpl
		}
	}
}
