package output

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/arthur-debert/packforge/pkg/compiler"
	"github.com/arthur-debert/packforge/pkg/errors"
	"github.com/arthur-debert/packforge/pkg/output/styles"
	"github.com/arthur-debert/packforge/pkg/types"
	"github.com/pterm/pterm"
)

// Renderer writes styled reports to a writer.
type Renderer struct {
	w io.Writer
}

// NewRenderer creates a renderer writing to w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Success reports a verified pack set.
func (r *Renderer) Success(result *compiler.Result) error {
	line := fmt.Sprintf("✓ %d packs verified in %s", len(result.Packs), result.Descriptor)
	_, err := fmt.Fprintf(r.w, "%s %s\n",
		styles.Render("Success", line),
		styles.Render("Muted", "("+result.Duration.Round(time.Millisecond).String()+")"))
	return err
}

// Error writes err with its code and sorted details. Errors that are not
// PackErrors are written as plain messages.
func (r *Renderer) Error(err error) error {
	var packErr *errors.PackError
	if !stderrors.As(err, &packErr) {
		_, werr := fmt.Fprintf(r.w, "%s %s\n", styles.Render("Error", "error:"), err.Error())
		return werr
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n",
		styles.Render("Code", "["+string(packErr.Code)+"]"),
		styles.Render("Error", packErr.Message))
	for _, key := range packErr.DetailKeys() {
		fmt.Fprintf(&b, "%s %s\n",
			styles.Render("DetailKey", key+":"),
			formatDetail(packErr.Details[key]))
	}
	if packErr.Wrapped != nil {
		fmt.Fprintf(&b, "%s %s\n", styles.Render("DetailKey", "cause:"), packErr.Wrapped.Error())
	}
	_, werr := io.WriteString(r.w, b.String())
	return werr
}

// Order writes the install order as a numbered list.
func (r *Renderer) Order(order []string) error {
	var b strings.Builder
	b.WriteString(styles.Render("Header", "Install order"))
	b.WriteString("\n")
	width := len(fmt.Sprint(len(order)))
	for i, name := range order {
		fmt.Fprintf(&b, "%*d. %s\n", width, i+1, styles.Render("Pack", name))
	}
	_, err := io.WriteString(r.w, b.String())
	return err
}

// PackTable writes one row per pack.
func (r *Renderer) PackTable(packs []types.Pack) error {
	if len(packs) == 0 {
		_, err := fmt.Fprintln(r.w, styles.Render("Muted", "No packs declared."))
		return err
	}

	data := pterm.TableData{{"Pack", "Required", "Preselected", "Exclude group", "Depends on"}}
	for _, pack := range packs {
		data = append(data, []string{
			pack.Name,
			yesNo(pack.Required),
			yesNo(pack.Preselected),
			dash(pack.ExcludeGroup),
			dash(strings.Join(pack.Dependencies, ", ")),
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.w, table)
	return err
}

func formatDetail(v interface{}) string {
	switch val := v.(type) {
	case []string:
		return strings.Join(val, ", ")
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
