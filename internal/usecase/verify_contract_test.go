package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/catapult/internal/domain"
	"github.com/trebuchet-org/catapult/internal/domain/config"
)

func newVerifyContract(network *domain.NetworkProfile, verifier *mockVerifier) *VerifyContract {
	cfg := &config.RuntimeConfig{NetworkName: network.Name, Network: network}
	return NewVerifyContract(cfg, newMockNetworkResolver(network), &mockArtifactRepository{}, verifier, NopProgress{})
}

func TestVerifyContract_Run(t *testing.T) {
	verifier := &mockVerifier{}
	uc := newVerifyContract(testNetwork(), verifier)

	result, err := uc.Run(context.Background(), VerifyContractParams{
		Address:         "0xabc0000000000000000000000000000000000123",
		ContractName:    "MyNFT",
		ConstructorArgs: "0x0000000000000000000000000000000000000000000000000000000000000001",
	})
	require.NoError(t, err)

	require.Len(t, verifier.requests, 1)
	req := verifier.requests[0]
	assert.Equal(t, mockAddress, req.Address)
	assert.Equal(t, "contracts/MyNFT.sol:MyNFT", req.Source.ContractName)
	assert.Equal(t, "0000000000000000000000000000000000000000000000000000000000000001", req.ConstructorArgs)
	assert.Equal(t, "sepolia", req.Network.Name)

	assert.Equal(t, "0.8.28+commit.7893614a", result.Compiler)
	assert.Equal(t, "Pass - Verified", result.Verification.Status)
	assert.Equal(t, "https://sepolia.etherscan.io/address/0xABc0000000000000000000000000000000000123#code", result.Verification.ExplorerURL)
}

func TestVerifyContract_Errors(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(n *domain.NetworkProfile)
		params   VerifyContractParams
		wantIs   error
		wantText string
	}{
		{
			name:     "invalid address",
			params:   VerifyContractParams{Address: "0x123", ContractName: "MyNFT"},
			wantText: "invalid contract address",
		},
		{
			name:     "bad constructor args",
			params:   VerifyContractParams{Address: mockAddress.Hex(), ContractName: "MyNFT", ConstructorArgs: "0xzz"},
			wantText: "ABI-encoded hex",
		},
		{
			name:   "no api key",
			mutate: func(n *domain.NetworkProfile) { n.ExplorerAPIKey = "" },
			params: VerifyContractParams{Address: mockAddress.Hex(), ContractName: "MyNFT"},
			wantIs: domain.ErrVerificationUnavailable,
		},
		{
			name:   "no api url",
			mutate: func(n *domain.NetworkProfile) { n.ExplorerAPIURL = "" },
			params: VerifyContractParams{Address: mockAddress.Hex(), ContractName: "MyNFT"},
			wantIs: domain.ErrVerificationUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			network := testNetwork()
			if tt.mutate != nil {
				tt.mutate(network)
			}
			verifier := &mockVerifier{}
			uc := newVerifyContract(network, verifier)

			_, err := uc.Run(context.Background(), tt.params)
			require.Error(t, err)
			if tt.wantIs != nil {
				assert.True(t, errors.Is(err, tt.wantIs))
			}
			if tt.wantText != "" {
				assert.Contains(t, err.Error(), tt.wantText)
			}
			assert.Empty(t, verifier.requests)
		})
	}
}

func TestVerifyContract_VerifierFailure(t *testing.T) {
	verifier := &mockVerifier{verifyFunc: func(ctx context.Context, req VerificationRequest) (*VerificationResult, error) {
		return nil, domain.ErrVerificationFailed
	}}
	uc := newVerifyContract(testNetwork(), verifier)

	_, err := uc.Run(context.Background(), VerifyContractParams{Address: mockAddress.Hex(), ContractName: "MyNFT"})
	assert.True(t, errors.Is(err, domain.ErrVerificationFailed))
}
