// Package importer loads vocabulary entries from spreadsheet files. The
// column layout mirrors the TSV export so a round trip through an editor
// works without remapping.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/tangocli/tango/internal/store"
	"github.com/tangocli/tango/internal/vocab"
)

// Column positions of an import row. Everything past the meaning column is
// optional.
const (
	colWord = iota
	colMeaning
	colPhonetic
	colPOS
	colExamples
	colSynonyms
	colAntonyms
)

// Result summarizes an import run. Row errors are collected rather than
// aborting the run, so one bad row does not discard the rest of the file.
type Result struct {
	Processed int
	Created   int
	Updated   int
	Skipped   int
	Errors    []string
}

// File imports entries from an xlsx or csv file, chosen by extension.
// Existing entries are matched by normalized headword and have their
// content fields replaced; scheduling state and statistics are preserved.
func File(ctx context.Context, st *store.Store, path string) (*Result, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv":
		return fromCSV(ctx, st, path)
	case ".xlsx":
		return fromExcel(ctx, st, path)
	default:
		return nil, fmt.Errorf("unsupported file type %q", filepath.Ext(path))
	}
}

func fromExcel(ctx context.Context, st *store.Store, path string) (*Result, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}

	return importRows(ctx, st, rows)
}

func fromCSV(ctx context.Context, st *store.Store, path string) (*Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		r.Comma = '\t'
	}
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var rows [][]string
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv: %w", err)
		}
		rows = append(rows, row)
	}

	return importRows(ctx, st, rows)
}

func importRows(ctx context.Context, st *store.Store, rows [][]string) (*Result, error) {
	result := &Result{}

	for i, row := range rows {
		if i == 0 && isHeader(row) {
			continue
		}

		word := cell(row, colWord)
		if word == "" {
			result.Skipped++
			continue
		}
		result.Processed++

		created, err := upsert(ctx, st, row)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d (%s): %v", i+1, word, err))
			continue
		}
		if created {
			result.Created++
		} else {
			result.Updated++
		}
	}

	return result, nil
}

func upsert(ctx context.Context, st *store.Store, row []string) (created bool, err error) {
	c := vocab.Candidate{
		Word:        cell(row, colWord),
		WordDisplay: cell(row, colWord),
		Meaning:     cell(row, colMeaning),
		Phonetic:    cell(row, colPhonetic),
		POS:         cell(row, colPOS),
		Examples:    parseExamples(cell(row, colExamples)),
		Synonyms:    splitList(cell(row, colSynonyms)),
		Antonyms:    splitList(cell(row, colAntonyms)),
	}

	existing, err := st.GetByWord(ctx, c.Word)
	switch {
	case err == nil:
		existing.WordDisplay = c.WordDisplay
		existing.Meaning = c.Meaning
		existing.Phonetic = c.Phonetic
		existing.POS = c.POS
		existing.Examples = c.Examples
		existing.Synonyms = c.Synonyms
		existing.Antonyms = c.Antonyms
		return false, st.Update(ctx, &existing)
	case errors.Is(err, store.ErrNotFound):
		e := vocab.NewEntry(c)
		return true, st.Insert(ctx, &e)
	default:
		return false, err
	}
}

func isHeader(row []string) bool {
	return strings.EqualFold(cell(row, colWord), "word")
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseExamples reverses the export encoding: sentence pairs separated by
// <br>, source and translation split on " / ".
func parseExamples(raw string) []vocab.Example {
	if raw == "" {
		return nil
	}
	var examples []vocab.Example
	for _, part := range strings.Split(raw, "<br>") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		en, ja, _ := strings.Cut(part, " / ")
		examples = append(examples, vocab.Example{En: strings.TrimSpace(en), Ja: strings.TrimSpace(ja)})
	}
	return examples
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
