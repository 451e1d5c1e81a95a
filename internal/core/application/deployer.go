package application

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/aldrin-labs/ramm-sui-deploy/internal/core/domain"
	"github.com/aldrin-labs/ramm-sui-deploy/internal/core/ports"
)

// Name of the module in the RAMM package exposing the API to create,
// populate and initialize a pool.
const rammModuleName = "ramm"

const (
	newRAMMFunction    = "new_ramm"
	addAssetFunction   = "add_asset_to_ramm"
	initializeFunction = "initialize_ramm"
)

// Gas budgets in MIST, fixed per transaction kind. Publishing the RAMM
// library on testnet cost roughly 0.25 SUI in late 2023.
const (
	publishGasBudget  uint64 = 500_000_000
	createGasBudget   uint64 = 100_000_000
	populateGasBudget uint64 = 100_000_000
)

// Service runs RAMM deployments end to end.
type Service interface {
	// Deploy resolves the RAMM library package, creates the pool, adds every
	// configured asset and initializes it. The pipeline is strictly
	// sequential and fails fast: a failure at any step aborts the deployment
	// without undoing earlier steps, so a package, pool or capability
	// published before the failure stays on-chain, orphaned.
	Deploy(ctx context.Context, req domain.DeploymentRequest) (*domain.DeploymentResult, error)
}

type deployerService struct {
	client   ports.SuiClient
	compiler ports.PackageCompiler
	sender   domain.Address
}

func NewService(
	client ports.SuiClient, compiler ports.PackageCompiler, sender domain.Address,
) Service {
	return &deployerService{
		client:   client,
		compiler: compiler,
		sender:   sender,
	}
}

func (s *deployerService) Deploy(
	ctx context.Context, req domain.DeploymentRequest,
) (*domain.DeploymentResult, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid deployment request: %w", err)
	}

	pkgID, err := s.resolvePackage(ctx, req.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve RAMM package: %w", err)
	}
	log.Infof("RAMM package ID: %s", pkgID)

	creation, err := s.createPool(ctx, req, pkgID)
	if err != nil {
		return nil, fmt.Errorf("failed to create RAMM: %w", err)
	}
	log.Infof("RAMM creation tx executed: %s", creation.Digest)

	pool, caps, err := s.resolvePoolAndCaps(ctx, creation)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve RAMM objects: %w", err)
	}
	log.Infof(
		"RAMM pool %s, admin cap %s, new asset cap %s",
		pool.Ref.ID, caps.AdminCap.Ref.ID, caps.NewAssetCap.Ref.ID,
	)

	aggregators, err := s.resolveAggregators(ctx, req.Assets)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve aggregators: %w", err)
	}

	gas, err := s.fetchGasContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch gas context: %w", err)
	}

	ptx := buildPopulateTx(pkgID, pool, caps, req.Assets, aggregators)
	final, err := s.client.ExecuteProgrammable(ctx, s.sender, ptx, gas, populateGasBudget)
	if err != nil {
		return nil, fmt.Errorf("failed to execute populate-and-initialize tx: %w", err)
	}
	if err := final.Err(); err != nil {
		return nil, fmt.Errorf("populate-and-initialize tx aborted: %w", err)
	}
	log.Infof("RAMM populated and initialized: %s", final.Digest)

	return &domain.DeploymentResult{
		PackageID:     pkgID,
		PoolID:        pool.Ref.ID,
		AdminCapID:    caps.AdminCap.Ref.ID,
		NewAssetCapID: caps.NewAssetCap.Ref.ID,
		FinalTxDigest: final.Digest,
	}, nil
}

// createPool issues the single-call transaction invoking the pool
// constructor. This is deliberately not part of the programmable transaction:
// the pool must exist on-chain, with a known initial shared version, before
// it can be referenced as a mutable shared input by the add-asset calls.
func (s *deployerService) createPool(
	ctx context.Context, req domain.DeploymentRequest, pkgID domain.ObjectID,
) (*domain.ExecutionResult, error) {
	res, err := s.client.ExecuteMoveCall(ctx, ports.MoveCallRequest{
		Sender:    s.sender,
		Package:   pkgID,
		Module:    rammModuleName,
		Function:  newRAMMFunction,
		Args:      []any{req.FeeCollectionAddress},
		GasBudget: createGasBudget,
	})
	if err != nil {
		return nil, err
	}
	if err := res.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// fetchGasContext picks a coin owned by the sender and the network's current
// reference gas price. Both must be fresh, and the coin must not be consumed
// by another in-flight transaction from the same account; a single writer per
// account is assumed, not enforced.
func (s *deployerService) fetchGasContext(ctx context.Context) (domain.GasContext, error) {
	coins, err := s.client.GetCoins(ctx, s.sender)
	if err != nil {
		return domain.GasContext{}, fmt.Errorf("failed to fetch coins for %s: %w", s.sender, err)
	}
	if len(coins) == 0 {
		return domain.GasContext{}, fmt.Errorf("address %s owns no coins to pay for gas", s.sender)
	}
	gasPrice, err := s.client.GetReferenceGasPrice(ctx)
	if err != nil {
		return domain.GasContext{}, fmt.Errorf("failed to fetch reference gas price: %w", err)
	}
	return domain.GasContext{Coin: coins[0], GasPrice: gasPrice}, nil
}
