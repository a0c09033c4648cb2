// Package styler renders labeled 2-D tables into styled HTML. A Styler
// wraps a table.Table together with its style rules (table-wide selector
// rules, per-cell property text, extra cell classes, caption, attributes)
// and renders deterministic markup through the html renderer: identical
// input and unique prefix always produce byte-identical output.
//
// Basic usage:
//
//	t := table.MustNew(
//		[][]any{{2.61}, {2.69}},
//		table.NewAxis("a", "b"),
//		table.NewAxis("A"),
//	)
//	s := styler.New(t, styler.WithUUID("abc_"))
//	s.SetTableStyles(style.Rule{Selector: "td", Props: "color: red;"})
//	html, err := s.Render(context.Background())
package styler
