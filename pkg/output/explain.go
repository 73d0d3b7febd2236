package output

import (
	"embed"
	"io/fs"
	"path"
	"strings"

	"github.com/arthur-debert/packforge/pkg/errors"
	"github.com/charmbracelet/glamour"
)

//go:embed explain/*.md
var explainFS embed.FS

// DefaultWrap is the column width explanations are wrapped at.
const DefaultWrap = 80

// Topics returns the error codes that have an explanation.
func Topics() ([]errors.ErrorCode, error) {
	files, err := fs.Glob(explainFS, "explain/*.md")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to list explanations")
	}
	codes := make([]errors.ErrorCode, 0, len(files))
	for _, file := range files {
		name := strings.TrimSuffix(path.Base(file), ".md")
		codes = append(codes, errors.ErrorCode(strings.ToUpper(strings.ReplaceAll(name, "-", "_"))))
	}
	return codes, nil
}

// Explanation returns the markdown source explaining code.
func Explanation(code errors.ErrorCode) (string, error) {
	name := strings.ToLower(strings.ReplaceAll(string(code), "_", "-"))
	data, err := explainFS.ReadFile("explain/" + name + ".md")
	if err != nil {
		codes, lerr := Topics()
		if lerr != nil {
			return "", lerr
		}
		return "", errors.Newf(errors.ErrInvalidInput, "no explanation for %s", code).
			WithDetail("code", string(code)).
			WithDetail("available", codeNames(codes))
	}
	return string(data), nil
}

// RenderMarkdown renders markdown for the terminal. Without color the
// notty style is used so the result is plain text.
func RenderMarkdown(markdown string, color bool, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle("notty")}
	if color {
		opts = []glamour.TermRendererOption{glamour.WithAutoStyle()}
	}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to create markdown renderer")
	}
	out, err := renderer.Render(markdown)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render markdown")
	}
	return out, nil
}

// Explain writes the rendered explanation of code.
func (r *Renderer) Explain(code errors.ErrorCode, color bool) error {
	markdown, err := Explanation(code)
	if err != nil {
		return err
	}
	out, err := RenderMarkdown(markdown, color, DefaultWrap)
	if err != nil {
		return err
	}
	_, err = r.w.Write([]byte(out))
	return err
}

func codeNames(codes []errors.ErrorCode) []string {
	names := make([]string, len(codes))
	for i, code := range codes {
		names[i] = string(code)
	}
	return names
}
