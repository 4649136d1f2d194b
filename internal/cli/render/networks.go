package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/catapult/internal/usecase"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out    io.Writer
	format string
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer, format string) *NetworksRenderer {
	return &NetworksRenderer{
		out:    out,
		format: format,
	}
}

// RenderNetworksList renders every configured network with its readiness
func (r *NetworksRenderer) RenderNetworksList(result *usecase.ListNetworksResult) error {
	if r.format != FormatText {
		return Structured(r.out, r.format, result)
	}

	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Available Networks:")
	fmt.Fprintln(r.out)

	checked := false
	for _, n := range result.Networks {
		checked = checked || n.Checked
	}

	t := newTable()
	header := table.Row{"", "NETWORK", "CHAIN ID", "RPC", "SIGNER", "VERIFY"}
	if checked {
		header = append(header, "BLOCK", "BALANCE")
	}
	t.AppendHeader(header)
	for _, n := range result.Networks {
		name := n.Name
		if n.Name == result.Current {
			name = color.New(color.Bold).Sprint(n.Name) + " *"
		}

		status := color.New(color.FgGreen).Sprint("✓")
		if n.Error != nil || n.ErrorString != "" || n.CheckError != "" {
			status = color.New(color.FgRed).Sprint("✗")
		}

		row := table.Row{
			status,
			name,
			chainID(n.ChainID),
			n.RPCHost,
			yesNo(n.HasSigner),
			yesNo(n.CanVerify),
		}
		if checked {
			row = append(row, blockNumber(n), n.Balance)
		}
		t.AppendRow(row)
	}
	fmt.Fprintln(r.out, t.Render())

	var problems []string
	for _, n := range result.Networks {
		if n.CheckError != "" {
			problems = append(problems, fmt.Sprintf("%s: %s", n.Name, n.CheckError))
			continue
		}
		if n.ErrorString == "" {
			continue
		}
		line := fmt.Sprintf("%s: %s", n.Name, n.ErrorString)
		if len(n.MissingEnv) > 0 {
			line += fmt.Sprintf(" (unset: %s)", strings.Join(n.MissingEnv, ", "))
		}
		problems = append(problems, line)
	}
	if len(problems) > 0 {
		fmt.Fprintln(r.out)
		for _, p := range problems {
			fmt.Fprintln(r.out, FormatWarning(p))
		}
	}

	return nil
}

func chainID(id uint64) string {
	if id == 0 {
		return "-"
	}
	return fmt.Sprintf("%d", id)
}

func blockNumber(n usecase.NetworkStatus) string {
	if !n.Reachable {
		return "-"
	}
	return fmt.Sprintf("%d", n.LatestBlock)
}

func yesNo(ok bool) string {
	if ok {
		return color.New(color.FgGreen).Sprint("yes")
	}
	return color.New(color.Faint).Sprint("no")
}
