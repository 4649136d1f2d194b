package verification

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/trebuchet-org/catapult/internal/domain"
	"github.com/trebuchet-org/catapult/internal/usecase"
)

const (
	defaultPollInterval = 5 * time.Second
	defaultMaxPolls     = 24

	statusPending         = "Pending in queue"
	statusPass            = "Pass - Verified"
	statusAlreadyVerified = "Already Verified"
)

// EtherscanVerifier submits standard JSON input to an Etherscan-compatible
// API and polls until the explorer reports a final status
type EtherscanVerifier struct {
	client       *http.Client
	log          *slog.Logger
	pollInterval time.Duration
	maxPolls     int
}

// Option configures an EtherscanVerifier
type Option func(*EtherscanVerifier)

// WithHTTPClient overrides the HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(v *EtherscanVerifier) { v.client = client }
}

// WithPolling overrides how often and how many times the status is checked
func WithPolling(interval time.Duration, maxPolls int) Option {
	return func(v *EtherscanVerifier) {
		v.pollInterval = interval
		v.maxPolls = maxPolls
	}
}

// NewEtherscanVerifier creates a new verifier
func NewEtherscanVerifier(log *slog.Logger, opts ...Option) *EtherscanVerifier {
	v := &EtherscanVerifier{
		client:       &http.Client{Timeout: 30 * time.Second},
		log:          log.With("component", "etherscan"),
		pollInterval: defaultPollInterval,
		maxPolls:     defaultMaxPolls,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ProvideEtherscanVerifier is the wire provider using default settings
func ProvideEtherscanVerifier(log *slog.Logger) *EtherscanVerifier {
	return NewEtherscanVerifier(log)
}

type apiResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Result  string `json:"result"`
}

// Verify submits the source and waits for the outcome
func (v *EtherscanVerifier) Verify(ctx context.Context, req usecase.VerificationRequest) (*usecase.VerificationResult, error) {
	form := url.Values{
		"apikey":                {req.Network.ExplorerAPIKey},
		"module":                {"contract"},
		"action":                {"verifysourcecode"},
		"contractaddress":       {req.Address.Hex()},
		"sourceCode":            {string(req.Source.StandardJSONInput)},
		"codeformat":            {"solidity-standard-json-input"},
		"contractname":          {req.Source.ContractName},
		"compilerversion":       {compilerVersion(req.Source.CompilerVersion)},
		"constructorArguements": {req.ConstructorArgs},
	}

	v.log.Debug("submitting verification", "address", req.Address.Hex(), "contract", req.Source.ContractName, "network", req.Network.Name)
	resp, err := v.do(ctx, http.MethodPost, req.Network.ExplorerAPIURL, form)
	if err != nil {
		return nil, err
	}

	if resp.Status != "1" {
		if isAlreadyVerified(resp.Result) {
			return &usecase.VerificationResult{Status: statusAlreadyVerified, AlreadyVerified: true}, nil
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrVerificationFailed, resp.Result)
	}

	guid := resp.Result
	v.log.Debug("verification submitted", "guid", guid)
	return v.poll(ctx, req, guid)
}

func (v *EtherscanVerifier) poll(ctx context.Context, req usecase.VerificationRequest, guid string) (*usecase.VerificationResult, error) {
	query := url.Values{
		"apikey": {req.Network.ExplorerAPIKey},
		"module": {"contract"},
		"action": {"checkverifystatus"},
		"guid":   {guid},
	}

	ticker := time.NewTicker(v.pollInterval)
	defer ticker.Stop()

	for attempt := 1; attempt <= v.maxPolls; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}

		resp, err := v.do(ctx, http.MethodGet, req.Network.ExplorerAPIURL, query)
		if err != nil {
			return nil, err
		}
		v.log.Debug("verification status", "guid", guid, "attempt", attempt, "result", resp.Result)

		switch {
		case resp.Result == statusPending:
			continue
		case resp.Result == statusPass:
			return &usecase.VerificationResult{GUID: guid, Status: resp.Result}, nil
		case isAlreadyVerified(resp.Result):
			return &usecase.VerificationResult{GUID: guid, Status: statusAlreadyVerified, AlreadyVerified: true}, nil
		default:
			return nil, fmt.Errorf("%w: %s", domain.ErrVerificationFailed, resp.Result)
		}
	}

	return nil, fmt.Errorf("%w: still pending after %d checks (guid %s)", domain.ErrVerificationFailed, v.maxPolls, guid)
}

func (v *EtherscanVerifier) do(ctx context.Context, method, endpoint string, values url.Values) (*apiResponse, error) {
	var (
		httpReq *http.Request
		err     error
	)
	if method == http.MethodPost {
		httpReq, err = http.NewRequestWithContext(ctx, method, endpoint, strings.NewReader(values.Encode()))
		if err == nil {
			httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	} else {
		httpReq, err = http.NewRequestWithContext(ctx, method, endpoint+"?"+values.Encode(), nil)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build explorer request: %w", err)
	}

	httpResp, err := v.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("explorer request failed: %w", err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read explorer response: %w", err)
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("explorer returned HTTP %d: %s", httpResp.StatusCode, strings.TrimSpace(string(body)))
	}

	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode explorer response: %w", err)
	}
	return &resp, nil
}

// compilerVersion formats a solc version the way the explorer expects
func compilerVersion(version string) string {
	if version == "" || strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}

func isAlreadyVerified(result string) bool {
	lower := strings.ToLower(result)
	return strings.Contains(lower, "already verified")
}

var _ usecase.ContractVerifier = (*EtherscanVerifier)(nil)
