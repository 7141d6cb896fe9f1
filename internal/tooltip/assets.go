package tooltip

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/ziadkadry99/abbrtip/internal/abbr"
)

const (
	// WidgetClass is the class of the shared floating tooltip element.
	WidgetClass = "mlabbr-tooltip"

	styleID  = "mlabbr-style"
	scriptID = "mlabbr-script"

	// indentStep is the left margin added per nesting level, in em.
	indentStep = 1.2
)

// Options tunes the runtime behavior of the page script.
type Options struct {
	// GraceDelay is how long a hovered tooltip survives after the pointer
	// leaves its marker.
	GraceDelay time.Duration
	// Margin is the minimum distance in pixels between the widget and the
	// viewport edges, and between the widget and its marker.
	Margin float64
	// CancelKey is the KeyboardEvent.key value that dismisses the widget.
	CancelKey string
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{
		GraceDelay: 120 * time.Millisecond,
		Margin:     10,
		CancelKey:  "Escape",
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.GraceDelay <= 0 {
		o.GraceDelay = d.GraceDelay
	}
	if o.Margin <= 0 {
		o.Margin = d.Margin
	}
	if o.CancelKey == "" {
		o.CancelKey = d.CancelKey
	}
	return o
}

type levelIndent struct {
	Level  int
	Indent string
}

type assetParams struct {
	StyleID     string
	ScriptID    string
	MarkerClass string
	PayloadAttr string
	WidgetClass string
	LineClass   string
	LevelPrefix string
	Levels      []levelIndent
	GraceMS     int64
	Margin      string
	CancelKey   string
}

var assetsTmpl = template.Must(template.New("assets").Parse(assetsTemplate))

// Injector appends the tooltip style and script to rendered pages.
type Injector struct {
	block string
}

// NewInjector renders the asset block for opts.
func NewInjector(opts Options) (*Injector, error) {
	opts = opts.withDefaults()

	params := assetParams{
		StyleID:     styleID,
		ScriptID:    scriptID,
		MarkerClass: abbr.MarkerClass,
		PayloadAttr: abbr.PayloadAttr,
		WidgetClass: WidgetClass,
		LineClass:   abbr.LineClass,
		LevelPrefix: abbr.LevelPrefix,
		GraceMS:     opts.GraceDelay.Milliseconds(),
		Margin:      formatFloat(opts.Margin),
		CancelKey:   opts.CancelKey,
	}
	for l := 0; l <= abbr.MaxLevel; l++ {
		params.Levels = append(params.Levels, levelIndent{Level: l, Indent: formatFloat(float64(l) * indentStep)})
	}

	var b strings.Builder
	if err := assetsTmpl.Execute(&b, params); err != nil {
		return nil, fmt.Errorf("rendering tooltip assets: %w", err)
	}
	return &Injector{block: b.String()}, nil
}

// Block returns the style and script markup.
func (in *Injector) Block() string { return in.block }

// Inject inserts the asset block immediately before the last </body> tag.
// Pages without one are returned unchanged. Inject is not idempotent:
// calling it on an already injected page adds a second copy, so callers
// invoke it exactly once per page.
func (in *Injector) Inject(page string) string {
	i := strings.LastIndex(page, "</body>")
	if i < 0 {
		return page
	}
	return page[:i] + in.block + page[i:]
}

// formatFloat prints f compactly, dropping float noise such as 3*1.2.
func formatFloat(f float64) string {
	return fmt.Sprintf("%.6g", f)
}
