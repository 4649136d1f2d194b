package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/trebuchet-org/catapult/internal/usecase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// VerifyOutput is the structured form of a verification
type VerifyOutput struct {
	Network         string `json:"network" yaml:"network"`
	Address         string `json:"address" yaml:"address"`
	Contract        string `json:"contract" yaml:"contract"`
	Compiler        string `json:"compiler" yaml:"compiler"`
	Status          string `json:"status" yaml:"status"`
	AlreadyVerified bool   `json:"alreadyVerified" yaml:"alreadyVerified"`
	GUID            string `json:"guid,omitempty" yaml:"guid,omitempty"`
	ExplorerURL     string `json:"explorerUrl,omitempty" yaml:"explorerUrl,omitempty"`
}

// VerifyRenderer renders verification results
type VerifyRenderer struct {
	out    io.Writer
	format string
}

// NewVerifyRenderer creates a new verify renderer
func NewVerifyRenderer(out io.Writer, format string) *VerifyRenderer {
	return &VerifyRenderer{out: out, format: format}
}

// Render renders the verification result
func (r *VerifyRenderer) Render(result *usecase.VerifyContractResult) error {
	output := VerifyOutput{
		Network:         result.Network.Name,
		Address:         result.Address.Hex(),
		Contract:        result.ContractName,
		Compiler:        result.Compiler,
		Status:          result.Verification.Status,
		AlreadyVerified: result.Verification.AlreadyVerified,
		GUID:            result.Verification.GUID,
		ExplorerURL:     result.Verification.ExplorerURL,
	}
	if r.format != FormatText {
		return Structured(r.out, r.format, output)
	}

	explorer := explorerName(result.Network.ExplorerBrowserURL)
	if output.AlreadyVerified {
		color.New(color.FgGreen).Fprintf(r.out, "  %s: ✓ Already verified\n", explorer)
	} else {
		color.New(color.FgGreen).Fprintf(r.out, "  %s: ✓ Verified\n", explorer)
	}
	fmt.Fprintln(r.out, keyValues([][2]string{
		{"Contract", output.Contract},
		{"Address", output.Address},
		{"Compiler", output.Compiler},
		{"Explorer", link(output.ExplorerURL)},
	}))
	return nil
}

// explorerName turns "https://sepolia.etherscan.io" into "Etherscan"
func explorerName(browserURL string) string {
	host := strings.TrimPrefix(strings.TrimPrefix(browserURL, "https://"), "http://")
	host = strings.SplitN(host, "/", 2)[0]
	parts := strings.Split(host, ".")
	if len(parts) < 2 {
		return "Explorer"
	}
	return cases.Title(language.English).String(parts[len(parts)-2])
}

var _ Renderer[*usecase.VerifyContractResult] = (*VerifyRenderer)(nil)
