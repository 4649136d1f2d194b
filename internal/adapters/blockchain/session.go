package blockchain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/trebuchet-org/catapult/internal/domain"
	"github.com/trebuchet-org/catapult/internal/usecase"
)

// Session signs and submits transactions with one account over one backend
type Session struct {
	backend Backend
	opts    *bind.TransactOpts
	chainID *big.Int
	closeFn func()
	log     *slog.Logger
}

// NewSession binds a private key to a backend for the given chain.
func NewSession(backend Backend, key *ecdsa.PrivateKey, chainID *big.Int, log *slog.Logger, closeFn func()) (*Session, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	if closeFn == nil {
		closeFn = func() {}
	}
	return &Session{
		backend: backend,
		opts:    opts,
		chainID: chainID,
		closeFn: closeFn,
		log:     log,
	}, nil
}

// Deployer returns the signing account address
func (s *Session) Deployer() common.Address {
	return s.opts.From
}

// ChainID returns the connected chain ID
func (s *Session) ChainID() uint64 {
	return s.chainID.Uint64()
}

func (s *Session) transactOpts(ctx context.Context) *bind.TransactOpts {
	opts := *s.opts
	opts.Context = ctx
	return &opts
}

// Deploy submits a contract creation transaction without waiting for it
func (s *Session) Deploy(ctx context.Context, factory *domain.ContractFactory, args ...any) (*domain.PendingTransaction, error) {
	if balance, err := s.backend.BalanceAt(ctx, s.Deployer(), nil); err == nil {
		s.log.Debug("deployer balance", "address", s.Deployer().Hex(), "wei", balance.String())
	}

	address, tx, _, err := bind.DeployContract(s.transactOpts(ctx), factory.ABI, factory.Bytecode, s.backend, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to deploy %s: %w", factory.Name, err)
	}

	s.log.Info("deployment submitted", "contract", factory.Name, "tx", tx.Hash().Hex(), "address", address.Hex())
	return s.pending(tx, address), nil
}

// WaitForDeployment blocks until the creation transaction is mined and code
// exists at the new address.
func (s *Session) WaitForDeployment(ctx context.Context, pending *domain.PendingTransaction) (*domain.Receipt, error) {
	if pending.To != nil {
		return nil, fmt.Errorf("transaction %s is not a contract creation", pending.Hash.Hex())
	}

	receipt, err := s.WaitMined(ctx, pending)
	if err != nil {
		return nil, err
	}

	code, err := s.backend.CodeAt(ctx, receipt.ContractAddress, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read code at %s: %w", receipt.ContractAddress.Hex(), err)
	}
	if len(code) == 0 {
		return nil, bind.ErrNoCodeAfterDeploy
	}

	return receipt, nil
}

// Transact packs and submits a call to method on contract
func (s *Session) Transact(ctx context.Context, contract common.Address, contractABI abi.ABI, method string, args ...any) (*domain.PendingTransaction, error) {
	bound := bind.NewBoundContract(contract, contractABI, s.backend, s.backend, s.backend)

	tx, err := bound.Transact(s.transactOpts(ctx), method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", method, err)
	}

	s.log.Info("transaction submitted", "method", method, "to", contract.Hex(), "tx", tx.Hash().Hex())
	return s.pending(tx, common.Address{}), nil
}

// WaitMined blocks until the transaction has a receipt. A reverted
// transaction is returned as domain.ErrTransactionReverted.
func (s *Session) WaitMined(ctx context.Context, pending *domain.PendingTransaction) (*domain.Receipt, error) {
	receipt, err := bind.WaitMined(ctx, s.backend, pending.Tx)
	if err != nil {
		return nil, fmt.Errorf("failed waiting for %s: %w", pending.Hash.Hex(), err)
	}

	s.log.Info("transaction mined", "tx", receipt.TxHash.Hex(), "block", receipt.BlockNumber, "gas_used", receipt.GasUsed, "status", receipt.Status)

	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("%w: %s", domain.ErrTransactionReverted, receipt.TxHash.Hex())
	}

	return &domain.Receipt{
		TxHash:          receipt.TxHash,
		BlockNumber:     receipt.BlockNumber,
		GasUsed:         receipt.GasUsed,
		Status:          receipt.Status,
		ContractAddress: receipt.ContractAddress,
		Logs:            receipt.Logs,
	}, nil
}

// Close releases the RPC connection
func (s *Session) Close() {
	s.closeFn()
}

func (s *Session) pending(tx *types.Transaction, created common.Address) *domain.PendingTransaction {
	return &domain.PendingTransaction{
		Hash:            tx.Hash(),
		From:            s.Deployer(),
		To:              tx.To(),
		Nonce:           tx.Nonce(),
		ContractAddress: created,
		Tx:              tx,
	}
}

var _ usecase.ChainSession = (*Session)(nil)
