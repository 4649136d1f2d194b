package interactive

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
	"github.com/trebuchet-org/catapult/internal/config"
	"github.com/trebuchet-org/catapult/internal/domain"
	"github.com/trebuchet-org/catapult/internal/usecase"
)

// SelectorAdapter handles interactive selection
type SelectorAdapter struct {
	config *config.RuntimeConfig
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{config: cfg}
}

// SelectContract selects a contract from a list
func (s *SelectorAdapter) SelectContract(ctx context.Context, contracts []domain.ContractInfo, prompt string) (*domain.ContractInfo, error) {
	if s.config.NonInteractive {
		return nil, fmt.Errorf("interactive selection not available in non-interactive mode")
	}

	if len(contracts) == 0 {
		return nil, fmt.Errorf("no contracts provided for selection")
	}
	if len(contracts) == 1 {
		return &contracts[0], nil
	}

	options := formatContractOptions(contracts)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, Enter to select"),
	}

	promptSelect := promptui.Select{
		Label:             prompt,
		Items:             options,
		Templates:         templates,
		Size:              10,
		StartInSearchMode: true,
		Searcher:          fuzzySearcher(plainOptions(contracts)),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return nil, fmt.Errorf("selection cancelled: %w", err)
	}

	return &contracts[index], nil
}

// formatContractOptions renders "Name (source)" with an artifact format tag
func formatContractOptions(contracts []domain.ContractInfo) []string {
	options := make([]string, len(contracts))
	for i, contract := range contracts {
		name := color.New(color.FgWhite, color.Bold).Sprint(contract.Name)
		source := color.New(color.FgBlue).Sprint(contract.SourceName)
		tag := color.New(color.FgYellow).Sprintf("[%s]", contract.Format)
		options[i] = fmt.Sprintf("%s %s (%s)", name, tag, source)
	}
	return options
}

// plainOptions are what the searcher matches against, free of color codes
func plainOptions(contracts []domain.ContractInfo) []string {
	plain := make([]string, len(contracts))
	for i, c := range contracts {
		plain[i] = c.FullyQualifiedName()
	}
	return plain
}

// fuzzySearcher matches by substring first, then fuzzily
func fuzzySearcher(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if input == "" {
			return true
		}

		input = strings.ToLower(input)
		item := strings.ToLower(items[index])
		if strings.Contains(item, input) {
			return true
		}

		return len(fuzzy.Find(input, []string{item})) > 0
	}
}

var _ usecase.ContractSelector = (*SelectorAdapter)(nil)
