package domain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// ArtifactFormat identifies the compiler toolchain that produced an artifact
type ArtifactFormat string

const (
	ArtifactFormatHardhat ArtifactFormat = "hardhat"
	ArtifactFormatFoundry ArtifactFormat = "foundry"
)

// ContractFactory holds everything needed to create one contract instance.
type ContractFactory struct {
	Name          string         `json:"name" yaml:"name"`
	SourceName    string         `json:"sourceName" yaml:"sourceName"`
	ArtifactPath  string         `json:"artifactPath" yaml:"artifactPath"`
	BuildInfoPath string         `json:"buildInfoPath,omitempty" yaml:"buildInfoPath,omitempty"`
	Format        ArtifactFormat `json:"format" yaml:"format"`
	ABI           abi.ABI        `json:"-" yaml:"-"`
	Bytecode      []byte         `json:"-" yaml:"-"`
}

// FullyQualifiedName returns the source:Contract identifier used by compilers
// and block explorers.
func (f *ContractFactory) FullyQualifiedName() string {
	if f.SourceName == "" {
		return f.Name
	}
	return f.SourceName + ":" + f.Name
}

// ContractInfo is the listing view of an indexed artifact.
type ContractInfo struct {
	Name       string         `json:"name" yaml:"name"`
	SourceName string         `json:"sourceName" yaml:"sourceName"`
	Path       string         `json:"path" yaml:"path"`
	Format     ArtifactFormat `json:"format" yaml:"format"`
	Deployable bool           `json:"deployable" yaml:"deployable"`
}

func (c ContractInfo) FullyQualifiedName() string {
	if c.SourceName == "" {
		return c.Name
	}
	return c.SourceName + ":" + c.Name
}

// PendingTransaction is a submitted, not yet confirmed transaction.
type PendingTransaction struct {
	Hash  common.Hash
	From  common.Address
	To    *common.Address
	Nonce uint64
	// ContractAddress is set for contract creations.
	ContractAddress common.Address

	Tx *types.Transaction
}

// Receipt is the confirmed outcome of a transaction.
type Receipt struct {
	TxHash          common.Hash    `json:"txHash" yaml:"txHash"`
	BlockNumber     *big.Int       `json:"blockNumber" yaml:"blockNumber"`
	GasUsed         uint64         `json:"gasUsed" yaml:"gasUsed"`
	Status          uint64         `json:"status" yaml:"status"`
	ContractAddress common.Address `json:"contractAddress,omitempty" yaml:"contractAddress,omitempty"`
	Logs            []*types.Log   `json:"-" yaml:"-"`
}

// Succeeded reports whether the transaction executed without reverting.
func (r *Receipt) Succeeded() bool {
	return r.Status == types.ReceiptStatusSuccessful
}

// DeployedContract is a contract whose creation transaction was confirmed.
type DeployedContract struct {
	Name        string         `json:"name" yaml:"name"`
	Address     common.Address `json:"address" yaml:"address"`
	TxHash      common.Hash    `json:"txHash" yaml:"txHash"`
	BlockNumber *big.Int       `json:"blockNumber" yaml:"blockNumber"`
	GasUsed     uint64         `json:"gasUsed" yaml:"gasUsed"`
	Deployer    common.Address `json:"deployer" yaml:"deployer"`
}

// MintedToken describes the token created by a mint call.
type MintedToken struct {
	Contract common.Address `json:"contract" yaml:"contract"`
	TokenID  *big.Int       `json:"tokenId" yaml:"tokenId"`
	TokenURI string         `json:"tokenUri" yaml:"tokenUri"`
	TxHash   common.Hash    `json:"txHash" yaml:"txHash"`
	Owner    common.Address `json:"owner" yaml:"owner"`
}

// VerificationSource is the compiler input needed to verify a contract on an explorer.
type VerificationSource struct {
	ContractName      string // fully qualified
	CompilerVersion   string // solc long version, e.g. 0.8.20+commit.a1b79de6
	StandardJSONInput []byte
}
