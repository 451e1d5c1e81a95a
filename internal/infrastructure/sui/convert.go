package sui

import (
	"fmt"

	"github.com/pattonkan/sui-go/sui"
	"github.com/pattonkan/sui-go/sui/suiptb"
	"github.com/pattonkan/sui-go/suiclient"

	"github.com/aldrin-labs/ramm-sui-deploy/internal/core/domain"
)

func toSuiObjectRef(ref domain.ObjectRef) (*sui.ObjectRef, error) {
	id, err := sui.ObjectIdFromHex(string(ref.ID))
	if err != nil {
		return nil, fmt.Errorf("invalid object ID %s: %w", ref.ID, err)
	}
	digest, err := sui.NewDigest(ref.Digest)
	if err != nil {
		return nil, fmt.Errorf("invalid object digest %s: %w", ref.Digest, err)
	}
	return &sui.ObjectRef{
		ObjectId: id,
		Version:  ref.Version,
		Digest:   digest,
	}, nil
}

func toSuiObjectArg(arg domain.ObjectArg) (suiptb.ObjectArg, error) {
	switch arg.Kind {
	case domain.ObjectArgImmOrOwned:
		ref, err := toSuiObjectRef(arg.Ref)
		if err != nil {
			return suiptb.ObjectArg{}, err
		}
		return suiptb.ObjectArg{ImmOrOwnedObject: ref}, nil
	case domain.ObjectArgShared:
		id, err := sui.ObjectIdFromHex(string(arg.Ref.ID))
		if err != nil {
			return suiptb.ObjectArg{}, fmt.Errorf("invalid object ID %s: %w", arg.Ref.ID, err)
		}
		return suiptb.ObjectArg{
			SharedObject: &suiptb.SharedObjectArg{
				Id:                   id,
				InitialSharedVersion: arg.InitialSharedVersion,
				Mutable:              arg.Mutable,
			},
		}, nil
	default:
		return suiptb.ObjectArg{}, fmt.Errorf("unknown object argument kind %q", arg.Kind)
	}
}

func fromTxResponse(resp *suiclient.SuiTransactionBlockResponse) *domain.ExecutionResult {
	result := &domain.ExecutionResult{
		Digest: resp.Digest.String(),
		Status: domain.ExecutionStatus{Success: true},
	}
	if resp.Effects == nil || resp.Effects.Data.V1 == nil {
		return result
	}
	effects := resp.Effects.Data.V1
	result.Status = domain.ExecutionStatus{
		Success: effects.Status.Status == suiclient.ExecutionStatusSuccess,
		Error:   effects.Status.Error,
	}
	for _, created := range effects.Created {
		result.Created = append(result.Created, domain.CreatedObject{
			Ref: domain.ObjectRef{
				ID:      domain.ObjectID(created.Reference.ObjectId.String()),
				Version: created.Reference.Version,
				Digest:  created.Reference.Digest.String(),
			},
			Owner: fromEffectsOwner(created.Owner.Data),
		})
	}
	return result
}

func fromObjectData(data *suiclient.SuiObjectData) domain.ObjectData {
	out := domain.ObjectData{
		Ref: domain.ObjectRef{
			ID:      domain.ObjectID(data.ObjectId.String()),
			Version: data.Version.Uint64(),
			Digest:  data.Digest.String(),
		},
		Owner: fromObjectOwner(data.Owner),
	}
	if data.Type != nil {
		out.Type = *data.Type
	}
	return out
}

// fromEffectsOwner maps the owner of a created object as reported in
// transaction effects.
func fromEffectsOwner(owner sui.Owner) domain.Owner {
	switch {
	case owner.AddressOwner != nil:
		return domain.Owner{
			Kind:    domain.OwnerAddress,
			Address: domain.Address(owner.AddressOwner.String()),
		}
	case owner.ObjectOwner != nil:
		return domain.Owner{
			Kind:    domain.OwnerObject,
			Address: domain.Address(owner.ObjectOwner.String()),
		}
	case owner.Shared != nil:
		return domain.Owner{
			Kind:                 domain.OwnerShared,
			InitialSharedVersion: owner.Shared.InitialSharedVersion,
		}
	default:
		// The RPC encodes immutable ownership as the bare string "Immutable".
		return domain.Owner{Kind: domain.OwnerImmutable}
	}
}

// fromObjectOwner maps the owner of a queried object. A bare "Immutable"
// string leaves the structured owner unset.
func fromObjectOwner(owner *suiclient.ObjectOwner) domain.Owner {
	if owner == nil || owner.ObjectOwnerInternal == nil {
		return domain.Owner{Kind: domain.OwnerImmutable}
	}
	internal := owner.ObjectOwnerInternal
	switch {
	case internal.AddressOwner != nil:
		return domain.Owner{
			Kind:    domain.OwnerAddress,
			Address: domain.Address(internal.AddressOwner.String()),
		}
	case internal.ObjectOwner != nil:
		return domain.Owner{
			Kind:    domain.OwnerObject,
			Address: domain.Address(internal.ObjectOwner.String()),
		}
	case internal.Shared != nil:
		var version uint64
		if internal.Shared.InitialSharedVersion != nil {
			version = *internal.Shared.InitialSharedVersion
		}
		return domain.Owner{
			Kind:                 domain.OwnerShared,
			InitialSharedVersion: version,
		}
	default:
		return domain.Owner{Kind: domain.OwnerImmutable}
	}
}
