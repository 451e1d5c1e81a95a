package ports

import (
	"context"

	"github.com/aldrin-labs/ramm-sui-deploy/internal/core/domain"
)

// MoveCallRequest describes a single-call (non programmable) Move
// transaction. Args are JSON-encodable values in declaration order.
type MoveCallRequest struct {
	Sender    domain.Address
	Package   domain.ObjectID
	Module    string
	Function  string
	TypeArgs  []string
	Args      []any
	GasBudget uint64
}

// SuiClient is the ledger client facade consumed by the deployment pipeline.
// Every method builds, signs with the active account's key, submits and waits
// for local execution of one transaction, or performs one read. Connection
// management, transports and signature schemes live behind this interface so
// the pipeline stays testable against fakes.
type SuiClient interface {
	// PublishPackage publishes compiled Move modules with their published
	// dependency IDs. No explicit gas object is selected; the client picks
	// one.
	PublishPackage(
		ctx context.Context, sender domain.Address,
		modules [][]byte, deps []domain.ObjectID, gasBudget uint64,
	) (*domain.ExecutionResult, error)
	// ExecuteMoveCall runs a single Move entry function call.
	ExecuteMoveCall(ctx context.Context, req MoveCallRequest) (*domain.ExecutionResult, error)
	// ExecuteProgrammable signs and submits a programmable transaction paid
	// for by the given gas context.
	ExecuteProgrammable(
		ctx context.Context, sender domain.Address,
		ptx domain.ProgrammableTx, gas domain.GasContext, gasBudget uint64,
	) (*domain.ExecutionResult, error)
	// GetObject reads one object, including its declared Move type.
	GetObject(ctx context.Context, id domain.ObjectID) (*domain.ObjectData, error)
	// MultiGetObjects reads a batch of objects in one round trip, preserving
	// input order.
	MultiGetObjects(ctx context.Context, ids []domain.ObjectID) ([]domain.ObjectData, error)
	// GetCoins lists the spendable coins owned by the given address.
	GetCoins(ctx context.Context, owner domain.Address) ([]domain.Coin, error)
	// GetReferenceGasPrice returns the network's current reference gas price.
	GetReferenceGasPrice(ctx context.Context) (uint64, error)
}
