// Package export turns an aggregation result into the published JSON views and
// writes them to the output tree.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
)

// ErrInvalidOutput is returned when a written file does not parse back.
var ErrInvalidOutput = errors.New("invalid output")

// Format represents the export format.
type Format string

const (
	// FormatCSV represents CSV export format.
	FormatCSV Format = "csv"
	// FormatJSON represents JSON export format.
	FormatJSON Format = "json"
)

// Options holds configuration for a single-file export.
type Options struct {
	Format     Format
	FilePath   string
	PrettyJSON bool
}

// Exporter writes one value to one file. Existing files are replaced.
type Exporter struct {
	opts Options
}

// NewExporter creates a new Exporter with the given options.
func NewExporter(opts Options) *Exporter {
	return &Exporter{opts: opts}
}

// Export writes data in the configured format and returns the number of bytes written.
func (e *Exporter) Export(data interface{}) (int64, error) {
	var buf bytes.Buffer
	if err := ExportToWriter(&buf, e.opts.Format, data, e.opts.PrettyJSON); err != nil {
		return 0, err
	}
	return e.writeToFile(buf.Bytes())
}

// writeToFile writes data to the configured file path.
func (e *Exporter) writeToFile(data []byte) (n int64, err error) {
	file, fileErr := e.createFile()
	if fileErr != nil {
		return 0, fileErr
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	written, err := file.Write(data)
	if err != nil {
		return int64(written), fmt.Errorf("failed to write to file: %w", err)
	}

	return int64(written), nil
}

// createFile creates or truncates the output file and its directory.
func (e *Exporter) createFile() (*os.File, error) {
	dir := filepath.Dir(e.opts.FilePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(e.opts.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	return file, nil
}

// ExportToWriter exports data to an io.Writer instead of a file.
// JSON output keeps &, < and > unescaped so card names stay readable.
func ExportToWriter(w io.Writer, format Format, data interface{}, prettyJSON bool) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetEscapeHTML(false)
		if prettyJSON {
			encoder.SetIndent("", "  ")
		}
		return encoder.Encode(data)
	case FormatCSV:
		return writeCSVToWriter(w, data)
	default:
		return fmt.Errorf("unsupported export format: %s", format)
	}
}

// writeCSVToWriter writes a slice of structs as CSV, one column per csv-tagged field.
func writeCSVToWriter(w io.Writer, data interface{}) error {
	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Slice {
		return fmt.Errorf("CSV export requires a slice, got %s", v.Kind())
	}

	elemType := v.Type().Elem()
	if elemType.Kind() == reflect.Ptr {
		elemType = elemType.Elem()
	}
	if elemType.Kind() != reflect.Struct {
		return fmt.Errorf("CSV export requires a slice of structs")
	}

	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeaders(elemType)); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i := 0; i < v.Len(); i++ {
		elem := v.Index(i)
		if elem.Kind() == reflect.Ptr {
			elem = elem.Elem()
		}

		if err := writer.Write(csvRow(elem)); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// csvHeaders extracts column names from a struct type. Fields without a csv tag are skipped.
func csvHeaders(t reflect.Type) []string {
	var headers []string
	for i := 0; i < t.NumField(); i++ {
		if tag := t.Field(i).Tag.Get("csv"); tag != "" && tag != "-" {
			headers = append(headers, tag)
		}
	}
	return headers
}

func csvRow(v reflect.Value) []string {
	var row []string
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		if tag := t.Field(i).Tag.Get("csv"); tag == "" || tag == "-" {
			continue
		}
		row = append(row, csvValue(v.Field(i)))
	}
	return row
}

// csvValue renders one field. String slices are joined with no separator, matching
// how color identities are usually written ("WUB").
func csvValue(v reflect.Value) string {
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.String {
			parts := make([]string, v.Len())
			for i := range parts {
				parts[i] = v.Index(i).String()
			}
			return strings.Join(parts, "")
		}
		return fmt.Sprintf("%v", v.Interface())
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}

// ValidateJSONFile re-parses a written file. Any failure wraps ErrInvalidOutput.
func ValidateJSONFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", ErrInvalidOutput, path, err)
	}
	if !json.Valid(data) {
		return fmt.Errorf("%w: %s does not parse as JSON", ErrInvalidOutput, path)
	}
	return nil
}
