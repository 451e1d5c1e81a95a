package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/aldrin-labs/ramm-sui-deploy/internal/core/domain"
)

// Struct names of the two capability objects minted by `new_ramm`, used to
// tell them apart once created.
const (
	adminCapTypeName    = "RAMMAdminCap"
	newAssetCapTypeName = "RAMMNewAssetCap"
)

// resolvePoolAndCaps extracts the pool and its two capabilities from the
// creation tx's effects. The response carries no semantic labels, only
// identifiers and ownership, so the capabilities have to be disambiguated:
//
//  1. The single shared created object is the pool; it becomes a mutable
//     shared input of the populate transaction.
//  2. The two objects owned by the sender are the capabilities, in no
//     particular order.
//  3. One type query on the first of the two decides the role of both: the
//     RAMM contract guarantees `new_ramm` mints exactly one capability of
//     each type, so if the first is the admin cap the second is necessarily
//     the new-asset cap, and vice versa. The second object is never queried.
//
// That single-query-then-infer strategy saves a round trip but depends
// entirely on the contract guarantee above; any other observed type name
// means the guarantee no longer holds and is reported as a protocol
// invariant violation, never guessed around.
func (s *deployerService) resolvePoolAndCaps(
	ctx context.Context, creation *domain.ExecutionResult,
) (domain.ObjectArg, domain.CapabilityPair, error) {
	shared := creation.CreatedShared()
	if len(shared) != 1 {
		return domain.ObjectArg{}, domain.CapabilityPair{}, fmt.Errorf(
			"%w: RAMM creation tx %s created %d shared objects, want exactly 1 (the pool)",
			domain.ErrProtocolInvariant, creation.Digest, len(shared),
		)
	}
	pool := domain.SharedObjectArg(
		shared[0].Ref.ID, shared[0].Owner.InitialSharedVersion, true,
	)

	owned := creation.CreatedOwnedBy(s.sender)
	if len(owned) != 2 {
		return domain.ObjectArg{}, domain.CapabilityPair{}, fmt.Errorf(
			"%w: RAMM creation tx %s created %d objects owned by %s, want exactly 2 (the capabilities)",
			domain.ErrProtocolInvariant, creation.Digest, len(owned), s.sender,
		)
	}

	first := domain.OwnedObjectArg(owned[0].Ref)
	second := domain.OwnedObjectArg(owned[1].Ref)

	data, err := s.client.GetObject(ctx, owned[0].Ref.ID)
	if err != nil {
		return domain.ObjectArg{}, domain.CapabilityPair{}, fmt.Errorf(
			"failed to query type of capability object %s: %w", owned[0].Ref.ID, err,
		)
	}

	var caps domain.CapabilityPair
	switch typeName(data.Type) {
	case adminCapTypeName:
		caps = domain.CapabilityPair{AdminCap: first, NewAssetCap: second}
	case newAssetCapTypeName:
		caps = domain.CapabilityPair{AdminCap: second, NewAssetCap: first}
	default:
		return domain.ObjectArg{}, domain.CapabilityPair{}, fmt.Errorf(
			"%w: object %s created by the RAMM creation tx has type %q, want %s or %s",
			domain.ErrProtocolInvariant, owned[0].Ref.ID, data.Type,
			adminCapTypeName, newAssetCapTypeName,
		)
	}
	return pool, caps, nil
}

// typeName returns the struct name of a fully qualified Move type, i.e. the
// segment after the last "::".
func typeName(fullType string) string {
	if idx := strings.LastIndex(fullType, "::"); idx >= 0 {
		return fullType[idx+2:]
	}
	return fullType
}
