// Command styler-cli renders a CSV file into a styled HTML table. The first
// CSV row supplies column labels and the first column supplies row labels.
// When run without -input on a terminal, missing settings are collected
// interactively.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	styler "github.com/goliatone/go-styler"
	"github.com/goliatone/go-styler/pkg/render"
	"github.com/goliatone/go-styler/pkg/style"
	"github.com/goliatone/go-styler/pkg/table"
	"github.com/goliatone/go-styler/pkg/theme"
)

func main() {
	input := flag.String("input", "", "CSV input path")
	output := flag.String("output", "", "output file (stdout if empty)")
	rendererName := flag.String("renderer", "html", "renderer to use")
	themeName := flag.String("theme", "", "built-in theme to apply")
	stylesPath := flag.String("styles", "", "YAML file with table style rules")
	caption := flag.String("caption", "", "table caption")
	format := flag.String("format", "", `format verb applied to every value, e.g. "%.2f"`)
	uuid := flag.String("uuid", "", "unique id prefix (random if empty)")
	doctype := flag.Bool("doctype", false, "emit a full HTML5 document")
	excludeStyles := flag.Bool("exclude-styles", false, "omit the <style> block, ids, and classes")
	flag.Parse()

	if *input == "" {
		if err := promptSettings(input, themeName); err != nil {
			log.Fatalf("prompt: %v", err)
		}
	}
	if *input == "" {
		log.Fatal("an input CSV is required")
	}

	t, err := loadCSV(*input)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", *input, err)
	}

	registry, err := styler.DefaultRegistry()
	if err != nil {
		log.Fatalf("Failed to build renderer registry: %v", err)
	}
	renderer, err := registry.Get(*rendererName)
	if err != nil {
		log.Fatalf("Unknown renderer %q (have %s): %v", *rendererName, strings.Join(registry.List(), ", "), err)
	}

	var opts []styler.Option
	if *uuid != "" {
		opts = append(opts, styler.WithUUID(*uuid))
	}
	opts = append(opts, styler.WithRenderer(renderer))

	s := styler.New(t, opts...)
	if *caption != "" {
		s.SetCaption(*caption)
	}
	if *format != "" {
		s.Format(*format)
	}
	if *themeName != "" {
		if err := s.UseTheme(*themeName); err != nil {
			log.Fatalf("Failed to apply theme: %v", err)
		}
	}
	if *stylesPath != "" {
		rules, err := style.LoadRules(*stylesPath)
		if err != nil {
			log.Fatalf("Failed to load styles: %v", err)
		}
		s.AddTableStyles(rules...)
	}

	outputHTML, err := s.ToHTML(context.Background(), render.Options{
		ExcludeStyles: *excludeStyles,
		DoctypeHTML:   *doctype,
	})
	if err != nil {
		log.Fatalf("Failed to render table: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(outputHTML), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Table written to %s\n", *output)
	} else {
		fmt.Println(outputHTML)
	}
}

func promptSettings(input, themeName *string) error {
	if err := survey.AskOne(&survey.Input{
		Message: "CSV input path:",
	}, input, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	if *themeName == "" {
		choices := append([]string{"none"}, theme.Names()...)
		var picked string
		if err := survey.AskOne(&survey.Select{
			Message: "Theme:",
			Options: choices,
			Default: "none",
		}, &picked); err != nil {
			return err
		}
		if picked != "none" {
			*themeName = picked
		}
	}
	return nil
}

// loadCSV reads a CSV file whose first row holds column labels and whose
// first column holds row labels. Numeric cells become floats or ints so the
// formatter layer can apply numeric formats.
func loadCSV(path string) (table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return table.Table{}, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return table.Table{}, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) < 2 || len(records[0]) < 2 {
		return table.Table{}, fmt.Errorf("csv needs a header row, a label column, and at least one data cell")
	}

	columns := table.NewAxis(records[0][1:]...)
	rowLabels := make([]string, 0, len(records)-1)
	values := make([][]any, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) != len(records[0]) {
			return table.Table{}, fmt.Errorf("row %q has %d fields, want %d", record[0], len(record), len(records[0]))
		}
		rowLabels = append(rowLabels, record[0])
		row := make([]any, 0, len(record)-1)
		for _, field := range record[1:] {
			row = append(row, parseCell(field))
		}
		values = append(values, row)
	}

	return table.New(values, table.NewAxis(rowLabels...), columns)
}

func parseCell(field string) any {
	trimmed := strings.TrimSpace(field)
	if trimmed == "" {
		return nil
	}
	if n, err := strconv.Atoi(trimmed); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return f
	}
	return trimmed
}
