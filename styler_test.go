package styler_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	styler "github.com/goliatone/go-styler"
	"github.com/goliatone/go-styler/pkg/render"
	"github.com/goliatone/go-styler/pkg/sanitize"
	"github.com/goliatone/go-styler/pkg/style"
	"github.com/goliatone/go-styler/pkg/table"
	"github.com/goliatone/go-styler/pkg/testsupport"
)

func fixtureTable(t *testing.T) table.Table {
	t.Helper()

	tbl, err := table.New(
		[][]any{{2.61}, {2.69}},
		table.NewAxis("a", "b"),
		table.NewAxis("A"),
	)
	if err != nil {
		t.Fatalf("build table: %v", err)
	}
	return tbl
}

func TestToHTML_StylesWithDoctype(t *testing.T) {
	s := styler.New(fixtureTable(t), styler.WithUUID("abc_"))
	s.SetTableStyles(style.Rule{Selector: "td", Props: "color: red;"})

	got, err := s.ToHTML(context.Background(), render.Options{DoctypeHTML: true})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	testsupport.WriteGolden(t, filepath.Join("testdata", "styles_doctype.golden"), []byte(got))
	want := testsupport.MustReadGoldenString(t, filepath.Join("testdata", "styles_doctype.golden"))
	if diff := testsupport.CompareGolden(want, got); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestToHTML_ExcludeStyles(t *testing.T) {
	s := styler.New(fixtureTable(t), styler.WithUUID("abc_"))
	s.SetTableStyles(style.Rule{Selector: "td", Props: "color: red;"})

	got, err := s.ToHTML(context.Background(), render.Options{ExcludeStyles: true, DoctypeHTML: true})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	testsupport.WriteGolden(t, filepath.Join("testdata", "exclude_styles.golden"), []byte(got))
	want := testsupport.MustReadGoldenString(t, filepath.Join("testdata", "exclude_styles.golden"))
	if diff := testsupport.CompareGolden(want, got); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}
	if strings.Contains(got, "<style") {
		t.Fatalf("expected no style block, got:\n%s", got)
	}
}

func TestRender_ComprehensiveMarkup(t *testing.T) {
	s := styler.New(fixtureTable(t), styler.WithUUID(""))
	s.SetTableStyles(style.Rule{Selector: "th", Props: "att2:v2;"}).
		Apply(func(_, _ int, _ any) string { return "att1:v1;" }).
		SetTableAttributes(`class="my-cls1" style="attr3:v3;"`).
		AddCellClasses(0, 0, "my-cls2").
		Format("%.1f").
		SetCaption("A comprehensive test")

	got, err := s.Render(context.Background())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	testsupport.WriteGolden(t, filepath.Join("testdata", "comprehensive.golden"), []byte(got))
	want := testsupport.MustReadGoldenString(t, filepath.Join("testdata", "comprehensive.golden"))
	if diff := testsupport.CompareGolden(want, got); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestToHTML_NoDoctypeOmitsEnvelope(t *testing.T) {
	s := styler.New(fixtureTable(t), styler.WithUUID("abc_"))

	got, err := s.ToHTML(context.Background(), render.Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, tag := range []string{"<html>", "<body>", "<!DOCTYPE html>", "<head>"} {
		if strings.Contains(got, tag) {
			t.Fatalf("expected %s to be absent, got:\n%s", tag, got)
		}
	}
	if !strings.Contains(got, "<table id=\"T_abc_\">") {
		t.Fatalf("expected table markup, got:\n%s", got)
	}
}

func TestRender_ColspanOnRepeatedOuterLabel(t *testing.T) {
	tbl, err := table.New(
		[][]any{{1, 2}},
		table.NewAxis("r0"),
		table.MustNewMultiAxis([]string{"l0", "l0"}, []string{"l1a", "l1b"}),
	)
	if err != nil {
		t.Fatalf("build table: %v", err)
	}

	s := styler.New(tbl, styler.WithUUID("_"), styler.WithoutCellIDs())
	got, err := s.Render(context.Background())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if !strings.Contains(got, `<th class="col_heading level0 col0" colspan="2">l0</th>`) {
		t.Fatalf("expected merged column header, got:\n%s", got)
	}
	if !strings.Contains(got, `<th class="col_heading level1 col0" >l1a</th>`) {
		t.Fatalf("expected inner level to render independently, got:\n%s", got)
	}
}

func TestRender_RowspanOnRepeatedOuterLabel(t *testing.T) {
	tbl, err := table.New(
		[][]any{{1}, {2}},
		table.MustNewMultiAxis([]string{"l0", "l0"}, []string{"l1a", "l1b"}),
		table.NewAxis("A"),
	)
	if err != nil {
		t.Fatalf("build table: %v", err)
	}

	s := styler.New(tbl, styler.WithUUID("__"), styler.WithoutCellIDs())
	got, err := s.Render(context.Background())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if !strings.Contains(got, `<th id="T___level0_row0" class="row_heading level0 row0" rowspan="2">l0</th>`) {
		t.Fatalf("expected merged row header, got:\n%s", got)
	}
}

func TestRender_NoRulesOmitsStyleBlock(t *testing.T) {
	s := styler.New(fixtureTable(t), styler.WithUUID("abc_"))

	got, err := s.Render(context.Background())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if strings.Contains(got, "<style") {
		t.Fatalf("expected no style block without rules, got:\n%s", got)
	}
	if !strings.Contains(got, "<table id=\"T_abc_\">") {
		t.Fatalf("expected table markup, got:\n%s", got)
	}
}

func TestRender_Deterministic(t *testing.T) {
	build := func() *styler.Styler {
		s := styler.New(fixtureTable(t), styler.WithUUID("abc_"))
		s.SetTableStyles(style.Rule{Selector: "td", Props: "color: red;"})
		s.Apply(func(row, _ int, _ any) string {
			if row == 0 {
				return "font-weight: bold;"
			}
			return ""
		})
		return s
	}

	first, err := build().Render(context.Background())
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	second, err := build().Render(context.Background())
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if first != second {
		t.Fatalf("renders differ:\n%s\n---\n%s", first, second)
	}
}

func TestRender_RandomUUIDStablePerStyler(t *testing.T) {
	s := styler.New(fixtureTable(t))

	first, err := s.Render(context.Background())
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	second, err := s.Render(context.Background())
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if first != second {
		t.Fatalf("repeated renders of one styler differ")
	}

	other := styler.New(fixtureTable(t))
	if got := other.UUID(); got == s.UUID() {
		t.Fatalf("expected distinct generated prefixes, both %q", got)
	}
}

func TestRender_CellPropsKeepIDWithoutCellIDs(t *testing.T) {
	s := styler.New(fixtureTable(t), styler.WithUUID("x_"), styler.WithoutCellIDs())
	s.SetCellProps(1, 0, "color: blue;")

	got, err := s.Render(context.Background())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if strings.Contains(got, `id="T_x_row0_col0"`) {
		t.Fatalf("expected no id on unstyled cell, got:\n%s", got)
	}
	if !strings.Contains(got, `<td id="T_x_row1_col0" class="data row1 col0" >`) {
		t.Fatalf("expected id on styled cell, got:\n%s", got)
	}
	if !strings.Contains(got, "#T_x_row1_col0 {\n  color: blue;\n}") {
		t.Fatalf("expected cell rule, got:\n%s", got)
	}
}

func TestRender_GroupedCellRulesShareSelectorList(t *testing.T) {
	s := styler.New(fixtureTable(t), styler.WithUUID(""))
	s.Apply(func(_, _ int, _ any) string { return "color: green;" })

	got, err := s.Render(context.Background())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if !strings.Contains(got, "#T_row0_col0, #T_row1_col0 {\n  color: green;\n}") {
		t.Fatalf("expected grouped selectors, got:\n%s", got)
	}
}

func TestRender_Theme(t *testing.T) {
	s := styler.New(fixtureTable(t), styler.WithUUID("t_"))
	if err := s.UseTheme("striped"); err != nil {
		t.Fatalf("use theme: %v", err)
	}
	if err := s.UseTheme("nope"); err == nil {
		t.Fatalf("expected unknown theme error")
	}

	got, err := s.Render(context.Background())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if !strings.Contains(got, "#T_t_ {\n") {
		t.Fatalf("expected token rule on the table element, got:\n%s", got)
	}
	if !strings.Contains(got, "--styler-stripe-bg: #f6f8fa;") {
		t.Fatalf("expected token declaration, got:\n%s", got)
	}
	if !strings.Contains(got, "#T_t_ tbody tr:nth-child(even) td {") {
		t.Fatalf("expected structural stripe rule, got:\n%s", got)
	}
}

func TestRender_SanitizerStripsMarkup(t *testing.T) {
	s := styler.New(fixtureTable(t),
		styler.WithUUID("s_"),
		styler.WithSanitizer(sanitize.Display()),
	)
	s.SetCaption(`<script>alert(1)</script><em>safe</em>`)

	got, err := s.Render(context.Background())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if strings.Contains(got, "<script>") {
		t.Fatalf("expected script to be stripped, got:\n%s", got)
	}
	if !strings.Contains(got, "<caption><em>safe</em></caption>") {
		t.Fatalf("expected inline markup to survive, got:\n%s", got)
	}
}

func TestFromCustomTemplate(t *testing.T) {
	dir := t.TempDir()
	custom := `{% extends "html_table.tpl" %}
{% block before_table %}<h1>My Table</h1>
{% endblock %}`
	if err := os.WriteFile(filepath.Join(dir, "mytable.tpl"), []byte(custom), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	factory, err := styler.FromCustomTemplate(dir, "mytable.tpl", "")
	if err != nil {
		t.Fatalf("custom template: %v", err)
	}

	s := factory.New(fixtureTable(t), styler.WithUUID("abc_"))
	got, err := s.Render(context.Background())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if !strings.Contains(got, "<h1>My Table</h1>\n<table id=\"T_abc_\">") {
		t.Fatalf("expected custom block output, got:\n%s", got)
	}
}

func TestFromCustomTemplate_StyleTemplate(t *testing.T) {
	dir := t.TempDir()
	custom := `{% extends "html_style.tpl" %}
{% block before_style %}<!-- my styles -->
{% endblock %}`
	if err := os.WriteFile(filepath.Join(dir, "mystyle.tpl"), []byte(custom), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	factory, err := styler.FromCustomTemplate(dir, "", "mystyle.tpl")
	if err != nil {
		t.Fatalf("custom template: %v", err)
	}

	s := factory.New(fixtureTable(t), styler.WithUUID("abc_"))
	s.SetTableStyles(style.Rule{Selector: "td", Props: "color: red;"})

	got, err := s.Render(context.Background())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if !strings.Contains(got, "<!-- my styles -->\n<style type=\"text/css\">") {
		t.Fatalf("expected custom block before the stylesheet, got:\n%s", got)
	}
	if !strings.Contains(got, "#T_abc_ td {\n  color: red;\n}") {
		t.Fatalf("expected default stylesheet body, got:\n%s", got)
	}
}

func TestFromCustomTemplate_MalformedSurfacesEngineError(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.tpl"), []byte(`{% extends "html_table.tpl" %}{% block nope %}`), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	factory, err := styler.FromCustomTemplate(dir, "broken.tpl", "")
	if err != nil {
		t.Fatalf("custom template: %v", err)
	}

	if _, err := factory.New(fixtureTable(t)).Render(context.Background()); err == nil {
		t.Fatalf("expected template error for unterminated block")
	}
}

func TestDefaultRegistry(t *testing.T) {
	registry, err := styler.DefaultRegistry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	if !registry.Has("html") {
		t.Fatalf("expected html renderer registered, have %v", registry.List())
	}
	renderer, err := registry.Get("html")
	if err != nil {
		t.Fatalf("get renderer: %v", err)
	}
	if renderer.ContentType() != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type %q", renderer.ContentType())
	}
}
