package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/san-kum/collatz/internal/collatz"
)

type Format string

const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
)

var ErrUnknownFormat = errors.New("export: unknown format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatTable, FormatCSV, FormatJSON:
		return f, nil
	case "":
		return FormatTable, nil
	}
	return "", fmt.Errorf("%w %q (want table, csv or json)", ErrUnknownFormat, s)
}

// Fields selects which per-seed columns WriteStats emits.
type Fields int

const (
	StoppingTime Fields = 1 << iota
	MaxValue
	AllFields = StoppingTime | MaxValue
)

type column struct {
	name string
	get  func(collatz.Stats) int64
}

func (f Fields) columns() []column {
	cols := []column{{"seed", func(s collatz.Stats) int64 { return s.Seed }}}
	if f&StoppingTime != 0 {
		cols = append(cols, column{"stopping_time", func(s collatz.Stats) int64 { return int64(s.StoppingTime) }})
	}
	if f&MaxValue != 0 {
		cols = append(cols, column{"max", func(s collatz.Stats) int64 { return s.Max }})
	}
	return cols
}

type StatsDoc struct {
	Count   int                `json:"count"`
	Results []map[string]int64 `json:"results"`
}

func WriteStats(w io.Writer, f Format, stats []collatz.Stats, fields Fields) error {
	cols := fields.columns()
	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = c.name
	}

	switch f {
	case FormatJSON:
		doc := StatsDoc{Count: len(stats), Results: make([]map[string]int64, len(stats))}
		for i, s := range stats {
			row := make(map[string]int64, len(cols))
			for _, c := range cols {
				row[c.name] = c.get(s)
			}
			doc.Results[i] = row
		}
		return encodeJSON(w, doc)

	case FormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write(header); err != nil {
			return err
		}
		for _, s := range stats {
			row := make([]string, len(cols))
			for i, c := range cols {
				row[i] = strconv.FormatInt(c.get(s), 10)
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()

	case FormatTable:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, strings.ToUpper(strings.Join(header, "\t")))
		for _, s := range stats {
			vals := make([]string, len(cols))
			for i, c := range cols {
				vals[i] = strconv.FormatInt(c.get(s), 10)
			}
			fmt.Fprintln(tw, strings.Join(vals, "\t"))
		}
		return tw.Flush()
	}

	return fmt.Errorf("%w %q", ErrUnknownFormat, f)
}

type MatrixDoc struct {
	Iterations int       `json:"iterations"`
	Seeds      []int64   `json:"seeds"`
	Rows       [][]int64 `json:"rows"`
}

// WriteMatrix writes one row per iteration, one column per seed.
func WriteMatrix(w io.Writer, f Format, m collatz.Matrix) error {
	var seeds []int64
	if m.Rows() > 0 {
		seeds = m[0]
	}
	header := []string{"iteration"}
	for _, s := range seeds {
		header = append(header, strconv.FormatInt(s, 10))
	}

	switch f {
	case FormatJSON:
		return encodeJSON(w, MatrixDoc{Iterations: m.Rows(), Seeds: seeds, Rows: m})

	case FormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write(header); err != nil {
			return err
		}
		for i, row := range m {
			if err := cw.Write(matrixRow(i, row)); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()

	case FormatTable:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, strings.Join(header, "\t")+"\t")
		for i, row := range m {
			fmt.Fprintln(tw, strings.Join(matrixRow(i, row), "\t")+"\t")
		}
		return tw.Flush()
	}

	return fmt.Errorf("%w %q", ErrUnknownFormat, f)
}

func matrixRow(i int, row []int64) []string {
	out := make([]string, 0, len(row)+1)
	out = append(out, strconv.Itoa(i))
	for _, v := range row {
		out = append(out, strconv.FormatInt(v, 10))
	}
	return out
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
