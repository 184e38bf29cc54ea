// Package renderer turns ledger views, summaries and budget reports into
// markdown suitable for terminal display.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/Rhymond/go-money"
)

//go:embed *.md
var templates embed.FS

// DefaultCurrency is the ISO code used to display amounts when the
// caller does not specify one. Amounts are stored in the smallest
// currency unit, which go-money expects.
const DefaultCurrency = "KRW"

// Amount formats a minor-unit amount in the given currency.
func Amount(amount int64, currency string) string {
	if currency == "" {
		currency = DefaultCurrency
	}
	return money.New(amount, currency).Display()
}

// renderTemplate renders one of the embedded templates with the data.
func renderTemplate(name string, data any) string {
	content, err := fs.ReadFile(templates, name)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", name, err)
	}
	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", name, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", name, err)
	}
	return b.String()
}
