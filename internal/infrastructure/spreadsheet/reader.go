package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jhoicas/Repuestos-api/internal/application/ports"
	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

var _ ports.SpreadsheetReader = (*Reader)(nil)

// Reader implementa ports.SpreadsheetReader para .xlsx y .csv.
type Reader struct{}

// NewReader crea el lector.
func NewReader() *Reader {
	return &Reader{}
}

// ReadParts devuelve una ParsedRow por fila de datos no vacía.
// Un archivo ilegible o sin la columna "Art. Nr In." es un error de entrada del archivo completo.
func (r *Reader) ReadParts(in io.Reader, opts ports.ReadOptions) ([]ports.ParsedRow, error) {
	var (
		rows       [][]string
		excelDates bool
		err        error
	)
	switch opts.Format {
	case ports.FormatXLSX:
		rows, err = readXLSX(in)
		excelDates = true
	case ports.FormatCSV:
		rows, err = readCSV(in, opts.Charset)
	default:
		return nil, domain.Invalid("file", fmt.Sprintf("formato no soportado: %q", opts.Format))
	}
	if err != nil {
		return nil, err
	}
	return parseRows(rows, excelDates)
}

func readXLSX(in io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(in)
	if err != nil {
		return nil, domain.Invalid("file", "no es un .xlsx válido")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, domain.Invalid("file", "el libro no tiene hojas")
	}
	// RawCellValue: números sin el formato de celda (evita "1,250.00" o fechas localizadas).
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("leer hoja %q: %w", sheets[0], err)
	}
	return rows, nil
}

func readCSV(in io.Reader, charset string) ([][]string, error) {
	raw, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("leer csv: %w", err)
	}
	dec, err := decoderFor(charset, raw)
	if err != nil {
		return nil, err
	}
	if dec != nil {
		if raw, err = dec.Bytes(raw); err != nil {
			return nil, domain.Invalid("charset", "no se pudo decodificar el archivo")
		}
	}
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))

	cr := csv.NewReader(bytes.NewReader(raw))
	cr.Comma = detectSeparator(raw)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	rows, err := cr.ReadAll()
	if err != nil {
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			return nil, domain.Invalid("file", fmt.Sprintf("csv mal formado en la línea %d", pe.Line))
		}
		return nil, fmt.Errorf("leer csv: %w", err)
	}
	return rows, nil
}

// decoderFor nil = UTF-8. Sin charset explícito, lo que no sea UTF-8 válido se lee como Windows-1252 (Excel sueco).
func decoderFor(charset string, raw []byte) (*encoding.Decoder, error) {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "":
		if utf8.Valid(raw) {
			return nil, nil
		}
		return charmap.Windows1252.NewDecoder(), nil
	case "utf-8", "utf8":
		return nil, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder(), nil
	case "iso-8859-1", "latin1":
		return charmap.ISO8859_1.NewDecoder(), nil
	default:
		return nil, domain.Invalid("charset", fmt.Sprintf("no soportado: %q", charset))
	}
}

// detectSeparator elige entre ';', ',' y tabulador según la línea de cabecera.
func detectSeparator(raw []byte) rune {
	line := raw
	if i := bytes.IndexByte(raw, '\n'); i >= 0 {
		line = raw[:i]
	}
	best, bestCount := ',', bytes.Count(line, []byte{','})
	for _, sep := range []rune{';', '\t'} {
		if n := bytes.Count(line, []byte(string(sep))); n > bestCount {
			best, bestCount = sep, n
		}
	}
	return best
}

func parseRows(rows [][]string, excelDates bool) ([]ports.ParsedRow, error) {
	if len(rows) == 0 {
		return nil, domain.Invalid("file", "el archivo está vacío")
	}
	index := headerIndex(rows[0])
	if _, ok := index[ColArticleNumber]; !ok {
		return nil, domain.Invalid("file", fmt.Sprintf("falta la columna %q", ColArticleNumber))
	}

	out := make([]ports.ParsedRow, 0, len(rows)-1)
	for i, cells := range rows[1:] {
		if blank(cells) {
			continue
		}
		rowNum := i + 2
		part, rowErr := parseRow(cells, index, excelDates)
		if rowErr != nil {
			rowErr.Row = rowNum
			out = append(out, ports.ParsedRow{Row: rowNum, Err: rowErr})
			continue
		}
		out = append(out, ports.ParsedRow{Row: rowNum, Part: part})
	}
	return out, nil
}

// headerIndex cabecera conocida -> índice de columna. Las cabeceras desconocidas se ignoran.
func headerIndex(header []string) map[string]int {
	known := make(map[string]string, len(columns))
	for _, c := range columns {
		known[strings.ToLower(c.header)] = c.header
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimPrefix(h, "\ufeff")
		if name, ok := known[strings.ToLower(strings.TrimSpace(h))]; ok {
			if _, dup := idx[name]; !dup {
				idx[name] = i
			}
		}
	}
	return idx
}

func parseRow(cells []string, index map[string]int, excelDates bool) (*entity.SparePart, *ports.RowError) {
	cell := func(header string) string {
		i, ok := index[header]
		if !ok || i >= len(cells) {
			return ""
		}
		return strings.TrimSpace(cells[i])
	}

	article := cell(ColArticleNumber)
	if article == "" {
		return nil, &ports.RowError{Column: ColArticleNumber, Message: "es obligatorio"}
	}

	p := &entity.SparePart{StoragePriority: entity.DefaultStoragePriority}
	for _, c := range columns {
		if _, ok := index[c.header]; !ok {
			continue
		}
		v := cell(c.header)
		if c.header == ColDate && excelDates {
			v = excelDate(v)
		}
		if err := c.set(p, v); err != nil {
			return nil, &ports.RowError{Column: c.header, ArticleNumber: article, Message: err.Error()}
		}
	}
	return p, nil
}

// excelDate convierte un número de serie de Excel a AAAA-MM-DD; cualquier otro texto se deja igual.
func excelDate(v string) string {
	serial, err := strconv.ParseFloat(v, 64)
	if err != nil || serial <= 0 {
		return v
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return v
	}
	return t.Format("2006-01-02")
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
