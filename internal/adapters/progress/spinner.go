package progress

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/trebuchet-org/catapult/internal/domain"
	"github.com/trebuchet-org/catapult/internal/usecase"
)

// SpinnerProgress renders deployment stages with a spinner on an
// interactive terminal and as plain lines otherwise
type SpinnerProgress struct {
	out         io.Writer
	interactive bool
	spinner     *spinner.Spinner
	stageStart  time.Time
}

// NewSpinnerProgress creates a new spinner-based progress reporter
func NewSpinnerProgress(out io.Writer, interactive bool) *SpinnerProgress {
	return &SpinnerProgress{
		out:         out,
		interactive: interactive,
	}
}

// OnProgress handles progress events
func (p *SpinnerProgress) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Spinner {
		p.stageStart = time.Now()
		p.startSpinner(spinnerMessage(event))
		return
	}
	p.stopSpinner()

	switch event.Stage {
	case usecase.StageConnected:
		if deployer, ok := event.Metadata.(common.Address); ok {
			p.line(color.New(color.FgCyan), "Connected as %s", deployer.Hex())
		}
	case usecase.StageDeployed:
		if deployed, ok := event.Metadata.(*domain.DeployedContract); ok {
			p.line(color.New(color.FgGreen), "✓ %s deployed at %s%s", deployed.Name, deployed.Address.Hex(), p.elapsed())
		}
	case usecase.StageMinted:
		if token, ok := event.Metadata.(*domain.MintedToken); ok {
			p.line(color.New(color.FgGreen), "✓ Minted token #%s%s", token.TokenID, p.elapsed())
		}
	case usecase.StageVerified:
		p.line(color.New(color.FgGreen), "✓ %s%s", event.Message, p.elapsed())
	default:
		if event.Message != "" {
			fmt.Fprintln(p.out, event.Message)
		}
	}
}

// Info prints an info message
func (p *SpinnerProgress) Info(message string) {
	p.pause(func() { color.New(color.FgCyan).Fprintln(p.out, message) })
}

// Error prints an error message
func (p *SpinnerProgress) Error(message string) {
	p.pause(func() { color.New(color.FgRed).Fprintln(p.out, message) })
}

// Stop clears any running spinner. Commands call it before rendering results.
func (p *SpinnerProgress) Stop() {
	p.stopSpinner()
}

func (p *SpinnerProgress) startSpinner(message string) {
	if !p.interactive {
		fmt.Fprintln(p.out, message)
		return
	}
	if p.spinner == nil {
		p.spinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		p.spinner.Writer = p.out
		_ = p.spinner.Color("cyan", "bold")
	}
	p.spinner.Suffix = " " + message
	if !p.spinner.Active() {
		p.spinner.Start()
	}
}

func (p *SpinnerProgress) stopSpinner() {
	if p.spinner != nil && p.spinner.Active() {
		p.spinner.Stop()
	}
}

func (p *SpinnerProgress) pause(print func()) {
	wasActive := p.spinner != nil && p.spinner.Active()
	if wasActive {
		p.spinner.Stop()
	}
	print()
	if wasActive {
		p.spinner.Start()
	}
}

func (p *SpinnerProgress) line(c *color.Color, format string, args ...any) {
	c.Fprintf(p.out, format+"\n", args...)
}

func (p *SpinnerProgress) elapsed() string {
	if p.stageStart.IsZero() || !p.interactive {
		return ""
	}
	return fmt.Sprintf(" (%s)", time.Since(p.stageStart).Round(time.Millisecond))
}

func spinnerMessage(event usecase.ProgressEvent) string {
	switch event.Stage {
	case usecase.StageDeploying:
		return fmt.Sprintf("Deploying %s...", event.Message)
	case usecase.StageMinting:
		return fmt.Sprintf("Minting %s...", event.Message)
	default:
		return event.Message
	}
}

// Ensure SpinnerProgress implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerProgress)(nil)
