package adapters

import (
	"github.com/google/wire"
	"github.com/trebuchet-org/catapult/internal/adapters/blockchain"
	"github.com/trebuchet-org/catapult/internal/adapters/fs"
	"github.com/trebuchet-org/catapult/internal/adapters/interactive"
	"github.com/trebuchet-org/catapult/internal/adapters/network"
	"github.com/trebuchet-org/catapult/internal/adapters/repository/contracts"
	"github.com/trebuchet-org/catapult/internal/adapters/verification"
	"github.com/trebuchet-org/catapult/internal/usecase"
)

// ConfigSet provides configuration-based implementations
var ConfigSet = wire.NewSet(
	network.NewResolver,
	wire.Bind(new(usecase.NetworkResolver), new(*network.Resolver)),
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewLocalConfigStoreAdapter,
	wire.Bind(new(usecase.LocalConfigStore), new(*fs.LocalConfigStoreAdapter)),
)

// RepositorySet provides the compiled artifact repository
var RepositorySet = wire.NewSet(
	contracts.ProvideRepository,
	wire.Bind(new(usecase.ArtifactRepository), new(*contracts.Repository)),
)

// BlockchainSet provides blockchain-based implementations
var BlockchainSet = wire.NewSet(
	blockchain.NewConnector,
	blockchain.NewCheckerAdapter,
	wire.Bind(new(usecase.ChainConnector), new(*blockchain.Connector)),
	wire.Bind(new(usecase.NetworkChecker), new(*blockchain.CheckerAdapter)),
)

// VerificationSet provides explorer verification
var VerificationSet = wire.NewSet(
	verification.ProvideEtherscanVerifier,
	wire.Bind(new(usecase.ContractVerifier), new(*verification.EtherscanVerifier)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.ContractSelector), new(*interactive.SelectorAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	ConfigSet,
	FSSet,
	RepositorySet,
	BlockchainSet,
	VerificationSet,
	InteractiveSet,
)
