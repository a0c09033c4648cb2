package pongo_test

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-styler/pkg/render/template/pongo"
	"github.com/goliatone/go-styler/pkg/testsupport"
)

//go:embed testdata/templates/*.tpl
var embeddedTemplates embed.FS

func newEngine(t *testing.T, opts ...pongo.Option) *pongo.Engine {
	t.Helper()

	templatesFS, err := fs.Sub(embeddedTemplates, "testdata/templates")
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}

	engine, err := pongo.New(append([]pongo.Option{pongo.WithFS(templatesFS)}, opts...)...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngine_RequiresLoader(t *testing.T) {
	if _, err := pongo.New(); err == nil {
		t.Fatalf("expected error without loaders")
	}
}

func TestEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, w)
	})

	want := "Hello Ada!"
	if result != want {
		t.Fatalf("render template mismatch result\nwant: %q\n got: %q", want, result)
	}
	if written != want {
		t.Fatalf("render template mismatch writer\nwant: %q\n got: %q", want, written)
	}
}

func TestEngine_RenderString(t *testing.T) {
	engine := newEngine(t)

	got, err := engine.RenderString("{{ n }}+{{ n }}", map[string]any{"n": 1})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "1+1" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngine_RenderDispatchesOnContent(t *testing.T) {
	engine := newEngine(t)

	got, err := engine.Render("{{ name }}", map[string]any{"name": "inline"})
	if err != nil {
		t.Fatalf("render inline: %v", err)
	}
	if got != "inline" {
		t.Fatalf("unexpected inline output %q", got)
	}

	got, err = engine.Render("hello", map[string]any{"name": "file"})
	if err != nil {
		t.Fatalf("render file: %v", err)
	}
	if got != "Hello file!" {
		t.Fatalf("unexpected file output %q", got)
	}
}

func TestEngine_ExtendsAndBlockSuper(t *testing.T) {
	engine := newEngine(t)

	got, err := engine.RenderTemplate("child", nil)
	if err != nil {
		t.Fatalf("render child: %v", err)
	}

	want := "<section>\nchild body\nbase body\n</section>"
	if got != want {
		t.Fatalf("inheritance mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t)
	if err := engine.GlobalContext(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	got, err := engine.RenderTemplate("use-global", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "env=staging" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("shout", func(input any, _ any) (any, error) {
		if input == nil {
			return "", nil
		}
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}

	got, err := engine.RenderTemplate("use-filter", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "ADA!" {
		t.Fatalf("unexpected output %q", got)
	}

	if err := engine.RegisterFilter("shout", func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected duplicate filter error")
	}
}

func TestEngine_RejectsUnsupportedContext(t *testing.T) {
	engine := newEngine(t)
	if _, err := engine.RenderString("{{ x }}", 42); err == nil {
		t.Fatalf("expected context conversion error")
	}
}

func TestEngine_DiskTemplateExtendsEmbedded(t *testing.T) {
	dir := t.TempDir()
	disk := "{% extends \"base.tpl\" %}\n{% block body %}disk body\n{% endblock %}"
	if err := os.WriteFile(filepath.Join(dir, "disk.tpl"), []byte(disk), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	engine := newEngine(t, pongo.WithBaseDir(dir))

	got, err := engine.RenderTemplate("disk", nil)
	if err != nil {
		t.Fatalf("render disk template: %v", err)
	}
	want := "<section>\ndisk body\n</section>"
	if got != want {
		t.Fatalf("inheritance across sources mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestEngine_DiskTemplateShadowsEmbedded(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "hello.tpl"), []byte("Howdy {{ name }}!"), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	engine := newEngine(t, pongo.WithBaseDir(dir))

	got, err := engine.RenderTemplate("hello", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Howdy Ada!" {
		t.Fatalf("expected the disk template to win, got %q", got)
	}
}

func TestEngine_RejectsMissingBaseDir(t *testing.T) {
	if _, err := pongo.New(pongo.WithBaseDir(filepath.Join(t.TempDir(), "nope"))); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}

func TestEngine_MissingTemplate(t *testing.T) {
	engine := newEngine(t)
	if _, err := engine.RenderTemplate("nope", nil); err == nil {
		t.Fatalf("expected load error for missing template")
	}
}
