package application_test

import (
	"context"
	"fmt"

	"github.com/aldrin-labs/ramm-sui-deploy/internal/core/domain"
	"github.com/aldrin-labs/ramm-sui-deploy/internal/core/ports"
)

const (
	testSender = domain.Address("0xC0FFEE")
	testPkgID  = domain.ObjectID("0x99")

	poolID = domain.ObjectID("0xP001")
	cap0ID = domain.ObjectID("0xCA90")
	cap1ID = domain.ObjectID("0xCA91")

	adminCapType    = "0x99::ramm::RAMMAdminCap"
	newAssetCapType = "0x99::ramm::RAMMNewAssetCap"
)

type fakeSuiClient struct {
	publish func(
		ctx context.Context, sender domain.Address,
		modules [][]byte, deps []domain.ObjectID, gasBudget uint64,
	) (*domain.ExecutionResult, error)
	moveCall     func(ctx context.Context, req ports.MoveCallRequest) (*domain.ExecutionResult, error)
	programmable func(
		ctx context.Context, sender domain.Address,
		ptx domain.ProgrammableTx, gas domain.GasContext, gasBudget uint64,
	) (*domain.ExecutionResult, error)
	getObject func(ctx context.Context, id domain.ObjectID) (*domain.ObjectData, error)
	multiGet  func(ctx context.Context, ids []domain.ObjectID) ([]domain.ObjectData, error)
	coins     func(ctx context.Context, owner domain.Address) ([]domain.Coin, error)
	gasPrice  func(ctx context.Context) (uint64, error)
}

func (f *fakeSuiClient) PublishPackage(
	ctx context.Context, sender domain.Address,
	modules [][]byte, deps []domain.ObjectID, gasBudget uint64,
) (*domain.ExecutionResult, error) {
	if f.publish == nil {
		return nil, errUnexpectedCall("PublishPackage")
	}
	return f.publish(ctx, sender, modules, deps, gasBudget)
}

func (f *fakeSuiClient) ExecuteMoveCall(
	ctx context.Context, req ports.MoveCallRequest,
) (*domain.ExecutionResult, error) {
	if f.moveCall == nil {
		return nil, errUnexpectedCall("ExecuteMoveCall")
	}
	return f.moveCall(ctx, req)
}

func (f *fakeSuiClient) ExecuteProgrammable(
	ctx context.Context, sender domain.Address,
	ptx domain.ProgrammableTx, gas domain.GasContext, gasBudget uint64,
) (*domain.ExecutionResult, error) {
	if f.programmable == nil {
		return nil, errUnexpectedCall("ExecuteProgrammable")
	}
	return f.programmable(ctx, sender, ptx, gas, gasBudget)
}

func (f *fakeSuiClient) GetObject(
	ctx context.Context, id domain.ObjectID,
) (*domain.ObjectData, error) {
	if f.getObject == nil {
		return nil, errUnexpectedCall("GetObject")
	}
	return f.getObject(ctx, id)
}

func (f *fakeSuiClient) MultiGetObjects(
	ctx context.Context, ids []domain.ObjectID,
) ([]domain.ObjectData, error) {
	if f.multiGet == nil {
		return nil, errUnexpectedCall("MultiGetObjects")
	}
	return f.multiGet(ctx, ids)
}

func (f *fakeSuiClient) GetCoins(
	ctx context.Context, owner domain.Address,
) ([]domain.Coin, error) {
	if f.coins == nil {
		return nil, errUnexpectedCall("GetCoins")
	}
	return f.coins(ctx, owner)
}

func (f *fakeSuiClient) GetReferenceGasPrice(ctx context.Context) (uint64, error) {
	if f.gasPrice == nil {
		return 0, errUnexpectedCall("GetReferenceGasPrice")
	}
	return f.gasPrice(ctx)
}

func errUnexpectedCall(op string) error {
	return fmt.Errorf("unexpected %s call", op)
}

type fakeCompiler struct {
	compile func(ctx context.Context, path string) (*ports.CompiledPackage, error)
}

func (f *fakeCompiler) Compile(
	ctx context.Context, path string,
) (*ports.CompiledPackage, error) {
	if f.compile == nil {
		return nil, errUnexpectedCall("Compile")
	}
	return f.compile(ctx, path)
}

// testRequest is the canonical two-asset testnet deployment used across the
// pipeline tests.
func testRequest() domain.DeploymentRequest {
	return domain.DeploymentRequest{
		TargetEnv:            "testnet",
		Source:               domain.PackageSource{PackageID: testPkgID},
		FeeCollectionAddress: "0xFEE",
		AssetCount:           2,
		Assets: []domain.AssetSpec{
			{
				AssetType:          "0xA::usdc::USDC",
				AggregatorAddress:  "0xAG1",
				MinimumTradeAmount: 1000,
				DecimalPlaces:      6,
			},
			{
				AssetType:          "0xA::eth::ETH",
				AggregatorAddress:  "0xAG2",
				MinimumTradeAmount: 1,
				DecimalPlaces:      8,
			},
		},
	}
}

func successResult(digest string, created ...domain.CreatedObject) *domain.ExecutionResult {
	return &domain.ExecutionResult{
		Digest:  digest,
		Status:  domain.ExecutionStatus{Success: true},
		Created: created,
	}
}

func sharedCreated(id domain.ObjectID, initialVersion uint64) domain.CreatedObject {
	return domain.CreatedObject{
		Ref: domain.ObjectRef{ID: id, Version: initialVersion, Digest: "shrd"},
		Owner: domain.Owner{
			Kind:                 domain.OwnerShared,
			InitialSharedVersion: initialVersion,
		},
	}
}

func ownedCreated(id domain.ObjectID, owner domain.Address) domain.CreatedObject {
	return domain.CreatedObject{
		Ref:   domain.ObjectRef{ID: id, Version: 7, Digest: "ownd"},
		Owner: domain.Owner{Kind: domain.OwnerAddress, Address: owner},
	}
}

func immutableCreated(id domain.ObjectID) domain.CreatedObject {
	return domain.CreatedObject{
		Ref:   domain.ObjectRef{ID: id, Version: 1, Digest: "immt"},
		Owner: domain.Owner{Kind: domain.OwnerImmutable},
	}
}

// creationResult mimics the effects of a successful `new_ramm` call: one
// shared pool and two sender-owned capabilities.
func creationResult() *domain.ExecutionResult {
	return successResult(
		"creation-digest",
		sharedCreated(poolID, 5),
		ownedCreated(cap0ID, testSender),
		ownedCreated(cap1ID, testSender),
	)
}

func sharedObjectData(id domain.ObjectID, initialVersion uint64) domain.ObjectData {
	return domain.ObjectData{
		Ref: domain.ObjectRef{ID: id, Version: initialVersion, Digest: "aggr"},
		Owner: domain.Owner{
			Kind:                 domain.OwnerShared,
			InitialSharedVersion: initialVersion,
		},
	}
}

// happyClient wires a fake client through the whole two-asset scenario:
// `new_ramm` creation, capability type query answering with the admin cap
// type for cap0, shared aggregators, one coin and a gas price. The built
// programmable tx is captured into ptxOut.
func happyClient(ptxOut *domain.ProgrammableTx) *fakeSuiClient {
	return &fakeSuiClient{
		moveCall: func(
			_ context.Context, req ports.MoveCallRequest,
		) (*domain.ExecutionResult, error) {
			return creationResult(), nil
		},
		getObject: func(
			_ context.Context, id domain.ObjectID,
		) (*domain.ObjectData, error) {
			return &domain.ObjectData{
				Ref:   domain.ObjectRef{ID: id, Version: 7, Digest: "ownd"},
				Type:  adminCapType,
				Owner: domain.Owner{Kind: domain.OwnerAddress, Address: testSender},
			}, nil
		},
		multiGet: func(
			_ context.Context, ids []domain.ObjectID,
		) ([]domain.ObjectData, error) {
			out := make([]domain.ObjectData, len(ids))
			for i, id := range ids {
				out[i] = sharedObjectData(id, 3)
			}
			return out, nil
		},
		coins: func(
			_ context.Context, owner domain.Address,
		) ([]domain.Coin, error) {
			return []domain.Coin{{
				Ref:     domain.ObjectRef{ID: "0xC014", Version: 42, Digest: "coin"},
				Balance: 2_000_000_000,
			}}, nil
		},
		gasPrice: func(_ context.Context) (uint64, error) { return 1000, nil },
		programmable: func(
			_ context.Context, _ domain.Address,
			ptx domain.ProgrammableTx, _ domain.GasContext, _ uint64,
		) (*domain.ExecutionResult, error) {
			if ptxOut != nil {
				*ptxOut = ptx
			}
			return successResult("populate-digest"), nil
		},
	}
}
