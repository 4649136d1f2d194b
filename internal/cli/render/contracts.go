package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/catapult/internal/usecase"
)

// ContractsRenderer renders indexed artifacts
type ContractsRenderer struct {
	out    io.Writer
	format string
}

// NewContractsRenderer creates a new contracts renderer
func NewContractsRenderer(out io.Writer, format string) *ContractsRenderer {
	return &ContractsRenderer{out: out, format: format}
}

// Render renders the contract list
func (r *ContractsRenderer) Render(result *usecase.ListContractsResult) error {
	if r.format != FormatText {
		return Structured(r.out, r.format, result)
	}

	if len(result.Contracts) == 0 {
		fmt.Fprintln(r.out, "No compiled contracts found. Run `npx hardhat compile` or `forge build` first.")
		return nil
	}

	t := newTable()
	t.AppendHeader(table.Row{"CONTRACT", "SOURCE", "FORMAT", "DEPLOYABLE"})
	for _, c := range result.Contracts {
		name := color.New(color.Bold).Sprint(c.Name)
		if !c.Deployable {
			name = color.New(color.Faint).Sprint(c.Name)
		}
		t.AppendRow(table.Row{name, c.SourceName, string(c.Format), yesNo(c.Deployable)})
	}
	fmt.Fprintln(r.out, t.Render())
	fmt.Fprintf(r.out, "\n%d contract(s)\n", len(result.Contracts))
	return nil
}

var _ Renderer[*usecase.ListContractsResult] = (*ContractsRenderer)(nil)
