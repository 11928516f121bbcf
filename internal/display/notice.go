package display

import (
	"bytes"
	"fmt"
	"log/slog"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// templateFuncs provides utility functions for notice templates.
var templateFuncs = sprig.TxtFuncMap()

const (
	tickFailureTemplate    = `Automation in {{ .Location }} hit a snag; it will retry on the next pass.`
	rebuildFailureTemplate = `Could not re-scan {{ .Location }}; machines there keep their last layout.`
	transferTemplate       = `{{ .Machine }} in {{ .Location }} finished {{ .Qty }}x {{ .Item }}.`
)

// Render expands a template string using the provided data. The data can be
// any struct - templates access fields via {{ .FieldName }}.
func Render(tmplStr string, data any) (string, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return buf.String(), nil
}

// TickFailure renders the terse user-facing notice for a failed tick pass.
func TickFailure(location string) string {
	return renderNotice(tickFailureTemplate, struct{ Location string }{Capitalize(location)})
}

// RebuildFailure renders the terse user-facing notice for a failed rebuild.
func RebuildFailure(location string) string {
	return renderNotice(rebuildFailureTemplate, struct{ Location string }{Capitalize(location)})
}

// Transfer renders the announcement for a finished item landing in storage.
func Transfer(location, machine, itemName string, qty int) string {
	return renderNotice(transferTemplate, struct {
		Location string
		Machine  string
		Item     string
		Qty      int
	}{Capitalize(location), Capitalize(machine), itemName, qty})
}

// Notices must never fail user-visibly; fall back to the raw template.
func renderNotice(tmplStr string, data any) string {
	out, err := Render(tmplStr, data)
	if err != nil {
		slog.Warn("rendering notice", "error", err)
		return tmplStr
	}
	return Wrap(out)
}
