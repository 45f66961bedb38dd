package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xtding233/gacha-sim/internal/gacha"
)

// ErrMissingInput is returned when a likelihood table is needed but absent.
var ErrMissingInput = errors.New("likelihood table not found; run likelihood mode first")

var header = []string{"budget", "p0", "p1", "p2", "p3", "p4plus"}

// DrawMode names the draw style in file names and titles.
func DrawMode(tenDraw bool) string {
	if tenDraw {
		return "tendraw"
	}
	return "single"
}

// FileName is the likelihood table name for a trial count and draw style.
func FileName(trials int, tenDraw bool) string {
	return fmt.Sprintf("likelihood_%d_%s.csv", trials, DrawMode(tenDraw))
}

// WriteLikelihood writes rows as CSV with six-decimal frequencies.
func WriteLikelihood(w io.Writer, rows []gacha.LikelihoodRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	rec := make([]string, len(header))
	for _, r := range rows {
		rec[0] = strconv.Itoa(r.Budget)
		for i, f := range r.Freq {
			rec[i+1] = strconv.FormatFloat(f, 'f', 6, 64)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveLikelihood writes rows to path, creating its directory.
func SaveLikelihood(path string, rows []gacha.LikelihoodRow) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteLikelihood(f, rows); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// ReadLikelihood parses a table produced by WriteLikelihood.
func ReadLikelihood(r io.Reader) ([]gacha.LikelihoodRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(header)
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 || recs[0][0] != header[0] {
		return nil, errors.New("likelihood table: missing header")
	}
	rows := make([]gacha.LikelihoodRow, 0, len(recs)-1)
	for line, rec := range recs[1:] {
		var row gacha.LikelihoodRow
		if row.Budget, err = strconv.Atoi(rec[0]); err != nil {
			return nil, fmt.Errorf("likelihood table line %d: %w", line+2, err)
		}
		for i := range row.Freq {
			if row.Freq[i], err = strconv.ParseFloat(rec[i+1], 64); err != nil {
				return nil, fmt.Errorf("likelihood table line %d: %w", line+2, err)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// LoadLikelihood reads the table at path. A missing file is ErrMissingInput.
func LoadLikelihood(path string) ([]gacha.LikelihoodRow, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingInput, path)
		}
		return nil, err
	}
	defer f.Close()
	return ReadLikelihood(f)
}
