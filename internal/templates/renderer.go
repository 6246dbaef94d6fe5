package templates

import (
	"bytes"
	"fmt"
	"text/template"

	oerrors "github.com/apollo-gears/cli/internal/errors"
)

// Render substitutes ctx into text. A placeholder with no value in ctx is an
// error rather than an empty string.
func Render(name, text string, ctx Context) (string, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return "", renderError(name, "parsing template", err)
	}

	data := map[string]string(ctx)
	if data == nil {
		data = map[string]string{}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", renderError(name, "executing template", err)
	}

	return buf.String(), nil
}

// RenderSource renders a resolved template.
func RenderSource(src *Source, ctx Context) (string, error) {
	return Render(src.Location, string(src.Content), ctx)
}

func renderError(name, step string, err error) error {
	return &oerrors.DetailError{
		Type:     "render failed",
		Message:  fmt.Sprintf("%s: %v", step, err),
		Location: name,
		Hint:     "Every placeholder must be one of the render context keys, e.g. {{ .moduleName }}.",
		Cause:    fmt.Errorf("%w: %w", oerrors.ErrRender, err),
	}
}
