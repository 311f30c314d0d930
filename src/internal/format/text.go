// FILE: logbridge/src/internal/format/text.go
package format

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"

	"logbridge/src/internal/config"
	"logbridge/src/internal/core"

	"github.com/lixenwraith/log"
)

const (
	defaultTemplate        = "{{FmtTime .Timestamp}} [{{ToUpper .Class}}] {{.Source}} {{.Message}}"
	defaultTimestampFormat = time.RFC3339
)

// Produces human-readable text lines using templates
type TextFormatter struct {
	opts     config.TextFormatterOptions
	template *template.Template
	logger   *log.Logger
}

// Creates a new text formatter
func NewTextFormatter(opts *config.TextFormatterOptions, logger *log.Logger) (*TextFormatter, error) {
	f := &TextFormatter{
		opts: config.TextFormatterOptions{
			Template:        defaultTemplate,
			TimestampFormat: defaultTimestampFormat,
		},
		logger: logger,
	}
	if opts != nil {
		if opts.Template != "" {
			f.opts.Template = opts.Template
		}
		if opts.TimestampFormat != "" {
			f.opts.TimestampFormat = opts.TimestampFormat
		}
	}

	// Create template with helper functions
	funcMap := template.FuncMap{
		"FmtTime": func(t time.Time) string {
			return t.Format(f.opts.TimestampFormat)
		},
		"ToUpper":   strings.ToUpper,
		"ToLower":   strings.ToLower,
		"TrimSpace": strings.TrimSpace,
	}

	tmpl, err := template.New("record").Funcs(funcMap).Parse(f.opts.Template)
	if err != nil {
		return nil, fmt.Errorf("invalid template: %w", err)
	}

	f.template = tmpl
	return f, nil
}

// Formats the record using the template
func (f *TextFormatter) Format(rec core.Record) ([]byte, error) {
	data := map[string]any{
		"Timestamp":  rec.Time,
		"Class":      rec.Class.String(),
		"Source":     rec.Source,
		"RemoteAddr": rec.RemoteAddr,
		"Message":    rec.Message,
	}

	var buf bytes.Buffer
	if err := f.template.Execute(&buf, data); err != nil {
		// Fallback: return a basic formatted line
		f.logger.Debug("msg", "Template execution failed, using fallback",
			"component", "text_formatter",
			"error", err)

		fallback := fmt.Sprintf("%s [%s] %s %s\n",
			rec.Time.Format(f.opts.TimestampFormat),
			strings.ToUpper(rec.Class.String()),
			rec.Source,
			rec.Message)
		return []byte(fallback), nil
	}

	// Ensure newline at end
	result := buf.Bytes()
	if len(result) == 0 || result[len(result)-1] != '\n' {
		result = append(result, '\n')
	}

	return result, nil
}

// Returns the formatter name
func (f *TextFormatter) Name() string {
	return "txt"
}
