package report

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.md
var templates embed.FS

var reportTemplate = template.Must(
	template.New("report.md").Funcs(template.FuncMap{
		"money":    func(float64) string { return "" },
		"date":     formatDate,
		"standing": StandingOf,
		"abs":      func(v float64) float64 { return max(v, -v) },
	}).ParseFS(templates, "templates/report.md"),
)

// Renderer turns reports into Markdown, formatting amounts in one currency.
type Renderer struct {
	currency money.Currency
}

// NewRenderer returns a renderer for the ISO 4217 currency code.
func NewRenderer(code string) (*Renderer, error) {
	cur := money.GetCurrency(strings.ToUpper(code))
	if cur == nil {
		return nil, fmt.Errorf("unknown currency %q", code)
	}
	return &Renderer{currency: *cur}, nil
}

// Money formats amount in the renderer's currency, rounded to its minor unit.
func (r *Renderer) Money(amount float64) string {
	dec := decimal.NewFromFloat(amount).Shift(int32(r.currency.Fraction)).Round(0)
	return r.currency.Formatter().Format(dec.IntPart())
}

// Markdown renders the report.
func (r *Renderer) Markdown(rep *Report) (string, error) {
	tmpl, err := reportTemplate.Clone()
	if err != nil {
		return "", err
	}
	tmpl.Funcs(template.FuncMap{"money": r.Money})

	var b strings.Builder
	if err := tmpl.Execute(&b, rep); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return b.String(), nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02 Jan 2006")
}
