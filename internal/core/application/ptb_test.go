package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldrin-labs/ramm-sui-deploy/internal/core/domain"
)

func TestBuildPopulateTx(t *testing.T) {
	pool := domain.SharedObjectArg("0xP001", 5, true)
	caps := domain.CapabilityPair{
		AdminCap:    domain.OwnedObjectArg(domain.ObjectRef{ID: "0xAD", Version: 7, Digest: "d"}),
		NewAssetCap: domain.OwnedObjectArg(domain.ObjectRef{ID: "0xNA", Version: 7, Digest: "d"}),
	}
	assets := []domain.AssetSpec{
		{AssetType: "0xA::usdc::USDC", AggregatorAddress: "0xAG1", MinimumTradeAmount: 1000, DecimalPlaces: 6},
		{AssetType: "0xA::eth::ETH", AggregatorAddress: "0xAG2", MinimumTradeAmount: 1, DecimalPlaces: 8},
		{AssetType: "0xA::sol::SOL", AggregatorAddress: "0xAG3", MinimumTradeAmount: 10, DecimalPlaces: 8},
	}
	aggregators := []domain.ObjectArg{
		domain.SharedObjectArg("0xAG1", 3, false),
		domain.SharedObjectArg("0xAG2", 3, false),
		domain.SharedObjectArg("0xAG3", 3, false),
	}

	ptx := buildPopulateTx("0x99", pool, caps, assets, aggregators)

	// One add-asset call per asset, in order, then one initialize call.
	require.Len(t, ptx.Calls, len(assets)+1)
	for i, asset := range assets {
		call := ptx.Calls[i]
		assert.Equal(t, domain.ObjectID("0x99"), call.Package)
		assert.Equal(t, "ramm", call.Module)
		assert.Equal(t, "add_asset_to_ramm", call.Function)
		assert.Equal(t, []string{asset.AssetType}, call.TypeArgs)
		require.Len(t, call.Args, 6)
	}

	last := ptx.Calls[len(assets)]
	assert.Equal(t, "initialize_ramm", last.Function)
	assert.Equal(t, []domain.Argument{{Input: 0}, {Input: 1}, {Input: 2}}, last.Args)

	// Persistent slots are registered once and shared across all calls.
	for _, call := range ptx.Calls[:len(assets)] {
		assert.Equal(t, domain.Argument{Input: 0}, call.Args[0])
		assert.Equal(t, domain.Argument{Input: 1}, call.Args[4])
		assert.Equal(t, domain.Argument{Input: 2}, call.Args[5])
	}

	// 3 persistent slots plus 3 per asset.
	require.Len(t, ptx.Inputs, 3+3*len(assets))
	for i, aggregator := range aggregators {
		slot := ptx.Inputs[3+3*i]
		require.NotNil(t, slot.Object)
		assert.Equal(t, aggregator.Ref.ID, slot.Object.Ref.ID)
		assert.Equal(t, assets[i].MinimumTradeAmount, ptx.Inputs[4+3*i].Pure)
		assert.Equal(t, assets[i].DecimalPlaces, ptx.Inputs[5+3*i].Pure)
	}
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "RAMMAdminCap", typeName("0x99::ramm::RAMMAdminCap"))
	assert.Equal(t, "USDC", typeName("0xA::usdc::USDC"))
	assert.Equal(t, "Bare", typeName("Bare"))
}
