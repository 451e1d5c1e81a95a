package application

import (
	"github.com/aldrin-labs/ramm-sui-deploy/internal/core/domain"
)

// buildPopulateTx assembles the programmable transaction that adds every
// configured asset to the pool and then initializes it, atomically.
//
// The pool and both capabilities are registered once as input slots and
// reused as arguments by every call. Call order is fixed: one add-asset call
// per asset in configuration order, then the initialize call, always last.
// A pool cannot be initialized before all of its assets have been added.
func buildPopulateTx(
	pkgID domain.ObjectID,
	pool domain.ObjectArg,
	caps domain.CapabilityPair,
	assets []domain.AssetSpec,
	aggregators []domain.ObjectArg,
) domain.ProgrammableTx {
	var ptx domain.ProgrammableTx

	poolArg := ptx.AddObject(pool)
	adminCapArg := ptx.AddObject(caps.AdminCap)
	newAssetCapArg := ptx.AddObject(caps.NewAssetCap)

	for i, asset := range assets {
		aggregatorArg := ptx.AddObject(aggregators[i])
		minTradeArg := ptx.AddPure(asset.MinimumTradeAmount)
		decimalsArg := ptx.AddPure(asset.DecimalPlaces)

		ptx.AddCall(domain.MoveCall{
			Package:  pkgID,
			Module:   rammModuleName,
			Function: addAssetFunction,
			TypeArgs: []string{asset.AssetType},
			Args: []domain.Argument{
				poolArg, aggregatorArg, minTradeArg, decimalsArg,
				adminCapArg, newAssetCapArg,
			},
		})
	}

	ptx.AddCall(domain.MoveCall{
		Package:  pkgID,
		Module:   rammModuleName,
		Function: initializeFunction,
		Args:     []domain.Argument{poolArg, adminCapArg, newAssetCapArg},
	})

	return ptx
}
