package view

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/tdewolff/minify/v2"
	minhtml "github.com/tdewolff/minify/v2/html"

	"blog-frontend/cmd/internal/logger"
)

//go:embed templates
var embeddedTemplates embed.FS

const partialsDir = "partials"

var ErrTemplateNotFound = errors.New("template not found")

// Options 는 템플릿을 어디서 읽고 출력을 어떻게 후처리할지 정한다.
type Options struct {
	// Dir 가 비어 있지 않으면 바이너리에 포함된 템플릿 대신 해당 디렉터리를 사용한다.
	Dir    string
	Minify bool
}

// Renderer 는 이름이 붙은 페이지 템플릿을 렌더링한다.
//
// 페이지 이름은 디렉터리를 점으로 구분한다. "blogfrontend.home" 은 blogfrontend/home.html 이다.
// 모든 페이지는 partials/ 아래에 정의된 템플릿을 쓸 수 있다.
type Renderer struct {
	pages    map[string]*template.Template
	minifier *minify.M
}

func New(opts Options) (*Renderer, error) {
	var fsys fs.FS
	if opts.Dir != "" {
		fsys = os.DirFS(opts.Dir)
	} else {
		sub, err := fs.Sub(embeddedTemplates, "templates")
		if err != nil {
			return nil, err
		}
		fsys = sub
	}

	r := &Renderer{pages: map[string]*template.Template{}}
	if err := r.load(fsys); err != nil {
		return nil, err
	}

	if opts.Minify {
		m := minify.New()
		m.Add("text/html", &minhtml.Minifier{
			KeepDocumentTags: true,
			KeepEndTags:      true,
			KeepQuotes:       true,
		})
		r.minifier = m
	}
	return r, nil
}

func (r *Renderer) load(fsys fs.FS) error {
	base := template.New("").Funcs(Funcs())

	partials, err := fs.Glob(fsys, partialsDir+"/*.html")
	if err != nil {
		return err
	}
	if len(partials) > 0 {
		if base, err = base.ParseFS(fsys, partials...); err != nil {
			return fmt.Errorf("parse partials: %w", err)
		}
	}

	return fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p == partialsDir {
				return fs.SkipDir
			}
			return nil
		}
		if path.Ext(p) != ".html" {
			return nil
		}

		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		name := pageName(p)
		tmpl, err := base.Clone()
		if err != nil {
			return err
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Errorf("parse template %s: %w", p, err)
		}
		r.pages[name] = tmpl
		logger.Log.Debugf("template loaded name=%s path=%s", name, p)
		return nil
	})
}

// pageName 은 "blogfrontend/home.html" 을 "blogfrontend.home" 으로 바꾼다.
func pageName(p string) string {
	return strings.ReplaceAll(strings.TrimSuffix(p, path.Ext(p)), "/", ".")
}

// Render 는 페이지 템플릿 name 을 data 로 실행해 결과를 w 에 쓴다.
// 실행이 실패하면 w 에는 아무것도 쓰지 않는다.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("execute template %s: %w", name, err)
	}

	if r.minifier == nil {
		_, err := buf.WriteTo(w)
		return err
	}

	var out bytes.Buffer
	if err := r.minifier.Minify("text/html", &out, &buf); err != nil {
		return fmt.Errorf("minify template %s: %w", name, err)
	}
	_, err := out.WriteTo(w)
	return err
}

// Has 는 페이지 템플릿이 로드되어 있는지 반환한다. router 가 기동 시 필수 페이지 확인에 쓴다.
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}

// names 는 로드된 페이지 이름을 정렬해서 반환한다.
func (r *Renderer) names() []string {
	names := make([]string, 0, len(r.pages))
	for name := range r.pages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
