package domain

import "fmt"

// Address is a 0x-prefixed hex Sui address.
type Address string

func (a Address) String() string { return string(a) }

// ObjectID identifies an on-chain object or a published package.
type ObjectID string

func (id ObjectID) String() string { return string(id) }

// ObjectRef pins an object at a specific version, as required to use it as a
// transaction input.
type ObjectRef struct {
	ID      ObjectID
	Version uint64
	Digest  string
}

type OwnerKind string

const (
	OwnerAddress   OwnerKind = "address"
	OwnerObject    OwnerKind = "object"
	OwnerShared    OwnerKind = "shared"
	OwnerImmutable OwnerKind = "immutable"
)

// Owner describes an object's ownership mode. Address is set for
// address-owned objects, InitialSharedVersion for shared ones.
type Owner struct {
	Kind                 OwnerKind
	Address              Address
	InitialSharedVersion uint64
}

// CreatedObject is one entry of a transaction's created-objects effects list.
type CreatedObject struct {
	Ref   ObjectRef
	Owner Owner
}

// ObjectData is the result of reading an object from the network.
type ObjectData struct {
	Ref ObjectRef
	// Type is the object's full Move type, e.g. "0xabc::ramm::RAMMAdminCap".
	Type  string
	Owner Owner
}

// ExecutionStatus is the ledger's verdict on a submitted transaction.
type ExecutionStatus struct {
	Success bool
	// Error carries the ledger's abort reason when Success is false.
	Error string
}

// ExecutionResult is what the pipeline needs out of a transaction block
// response: the digest, the execution status, and the created objects.
type ExecutionResult struct {
	Digest  string
	Status  ExecutionStatus
	Created []CreatedObject
}

// Err returns a non-nil error iff the transaction was rejected or aborted.
func (r *ExecutionResult) Err() error {
	if r.Status.Success {
		return nil
	}
	return fmt.Errorf("transaction %s failed: %s", r.Digest, r.Status.Error)
}

// CreatedShared returns the created objects with shared ownership.
func (r *ExecutionResult) CreatedShared() []CreatedObject {
	return r.createdByKind(OwnerShared)
}

// CreatedImmutable returns the created objects with immutable ownership.
func (r *ExecutionResult) CreatedImmutable() []CreatedObject {
	return r.createdByKind(OwnerImmutable)
}

// CreatedOwnedBy returns the created objects owned by the given address.
func (r *ExecutionResult) CreatedOwnedBy(addr Address) []CreatedObject {
	out := make([]CreatedObject, 0, len(r.Created))
	for _, obj := range r.Created {
		if obj.Owner.Kind == OwnerAddress && obj.Owner.Address == addr {
			out = append(out, obj)
		}
	}
	return out
}

func (r *ExecutionResult) createdByKind(kind OwnerKind) []CreatedObject {
	out := make([]CreatedObject, 0, len(r.Created))
	for _, obj := range r.Created {
		if obj.Owner.Kind == kind {
			out = append(out, obj)
		}
	}
	return out
}

// Coin is a spendable gas coin belonging to the active address.
type Coin struct {
	Ref     ObjectRef
	Balance uint64
}

// GasContext carries the coin and reference gas price used to pay for the
// populate-and-initialize transaction. Both must be fetched right before the
// transaction is built: a stale gas price or an already spent coin makes the
// transaction invalid.
type GasContext struct {
	Coin     Coin
	GasPrice uint64
}

// CapabilityPair holds the RAMM's two capability objects, tagged by role
// after disambiguation. It only lives between pool creation and the
// populate-and-initialize transaction.
type CapabilityPair struct {
	AdminCap    ObjectArg
	NewAssetCap ObjectArg
}

// DeploymentResult is what a successful deployment hands back to the
// operator: the IDs of the three objects that now make up the RAMM, and the
// digest of the transaction that populated and initialized it.
type DeploymentResult struct {
	PackageID     ObjectID
	PoolID        ObjectID
	AdminCapID    ObjectID
	NewAssetCapID ObjectID
	FinalTxDigest string
}
