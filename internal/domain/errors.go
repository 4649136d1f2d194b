package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrInvalidNetworkConfig is returned when a network profile fails validation
	ErrInvalidNetworkConfig = errors.New("invalid network configuration")

	// ErrUnknownNetwork is returned when a network name is not configured
	ErrUnknownNetwork = errors.New("unknown network")

	// ErrNoSigner is returned when a network profile has no usable signing account
	ErrNoSigner = errors.New("no signing account configured")

	// ErrChainIDMismatch is returned when the RPC endpoint reports a different chain
	ErrChainIDMismatch = errors.New("chain ID mismatch")

	// ErrContractNotFound is returned when no compiled artifact matches a contract name
	ErrContractNotFound = errors.New("contract not found")

	// ErrNotDeployable is returned for artifacts without creation bytecode (interfaces, abstract contracts)
	ErrNotDeployable = errors.New("contract has no creation bytecode")

	// ErrUnlinkedLibraries is returned when bytecode still carries library placeholders
	ErrUnlinkedLibraries = errors.New("contract bytecode has unlinked libraries")

	// ErrTransactionReverted is returned when a mined transaction has a failed status
	ErrTransactionReverted = errors.New("transaction reverted")

	// ErrMethodNotFound is returned when a contract ABI lacks the requested method
	ErrMethodNotFound = errors.New("method not found in ABI")

	// ErrVerificationUnavailable is returned when a network has no explorer API or key
	ErrVerificationUnavailable = errors.New("explorer verification not configured")

	// ErrVerificationFailed is returned when the explorer rejects a verification
	ErrVerificationFailed = errors.New("verification failed")
)

// ConfigError describes a single invalid field of a network profile.
type ConfigError struct {
	Network string
	Field   string
	Reason  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("network %q: invalid %s: %s", e.Network, e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidNetworkConfig
}

// ContractNotFoundError is returned when a contract lookup has no match.
type ContractNotFoundError struct {
	Name        string
	Suggestions []string
}

func (e *ContractNotFoundError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("no compiled artifact for contract %q (did you compile?)", e.Name)
	}
	return fmt.Sprintf("no compiled artifact for contract %q, did you mean: %s?",
		e.Name, strings.Join(e.Suggestions, ", "))
}

func (e *ContractNotFoundError) Unwrap() error {
	return ErrContractNotFound
}

// AmbiguousContractError is returned when a bare contract name matches
// artifacts from more than one source file.
type AmbiguousContractError struct {
	Name    string
	Matches []string
}

func (e *AmbiguousContractError) Error() string {
	matches := make([]string, len(e.Matches))
	copy(matches, e.Matches)
	sort.Strings(matches)

	var suggestions []string
	for _, m := range matches {
		suggestions = append(suggestions, "  - "+m)
	}

	return fmt.Sprintf("multiple contracts found matching %q - use the source:Contract form to disambiguate:\n%s",
		e.Name, strings.Join(suggestions, "\n"))
}
