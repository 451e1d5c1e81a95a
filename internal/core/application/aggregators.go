package application

import (
	"context"
	"fmt"

	"github.com/aldrin-labs/ramm-sui-deploy/internal/core/domain"
)

// resolveAggregators reads every asset's price aggregator object in a single
// batched query and turns each into an immutably borrowed shared object
// input. The returned slice is in asset order: the populate transaction zips
// aggregators with assets by position, not by ID.
//
// An aggregator must be a shared object; referencing an address-owned one as
// a read-only input across compositions would not be safe, so any other
// ownership mode fails the whole resolution with no partial result.
func (s *deployerService) resolveAggregators(
	ctx context.Context, assets []domain.AssetSpec,
) ([]domain.ObjectArg, error) {
	ids := make([]domain.ObjectID, len(assets))
	for i, asset := range assets {
		ids[i] = domain.ObjectID(asset.AggregatorAddress)
	}

	objects, err := s.client.MultiGetObjects(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to read aggregator objects: %w", err)
	}
	if len(objects) != len(ids) {
		return nil, fmt.Errorf(
			"aggregator batch read returned %d objects, want %d", len(objects), len(ids),
		)
	}

	args := make([]domain.ObjectArg, len(objects))
	for i, obj := range objects {
		if obj.Owner.Kind != domain.OwnerShared {
			return nil, fmt.Errorf(
				"%w: aggregator %s for asset %s is %s-owned, want shared",
				domain.ErrProtocolInvariant, obj.Ref.ID, assets[i].AssetType, obj.Owner.Kind,
			)
		}
		args[i] = domain.SharedObjectArg(obj.Ref.ID, obj.Owner.InitialSharedVersion, false)
	}
	return args, nil
}
