package domain

import (
	"fmt"
	"strings"
)

// MinDecimalPlaces is the minimum number of decimal places an asset may be
// configured with. Heuristic guard against typos in the deployment TOML, no
// on-chain meaning.
const MinDecimalPlaces uint8 = 4

var supportedEnvs = map[string]struct{}{
	"active":  {},
	"testnet": {},
	"mainnet": {},
}

// AssetSpec holds the data required to add one asset to the RAMM via its Move
// API: the asset's coin type, the Switchboard aggregator that prices it, and
// its trading parameters.
type AssetSpec struct {
	// AssetType is the asset's Sui coin type, e.g. "0xabc::usdc::USDC".
	AssetType string
	// AggregatorAddress is the address of the asset's price aggregator object.
	AggregatorAddress  Address
	MinimumTradeAmount uint64
	DecimalPlaces      uint8
}

// PackageSource tells the deployer where the RAMM library package ID comes
// from: either an already published package, or a local Move package to be
// compiled and published. Exactly one of the two fields is set.
type PackageSource struct {
	PackageID   ObjectID
	PublishPath string
}

// IsPublish reports whether the RAMM library must be published to obtain its
// package ID.
func (s PackageSource) IsPublish() bool {
	return s.PublishPath != ""
}

func (s PackageSource) String() string {
	if s.IsPublish() {
		return fmt.Sprintf("publish package at %s", s.PublishPath)
	}
	return fmt.Sprintf("existing package %s", s.PackageID)
}

// DeploymentRequest specifies how a single RAMM is to be deployed: the target
// network, the source of the RAMM library package, the pool's fee collection
// address and the ordered list of assets it will hold. It is built once from
// the deployment TOML, validated before any network call, and read-only for
// every pipeline step afterwards.
type DeploymentRequest struct {
	TargetEnv            string
	Source               PackageSource
	FeeCollectionAddress Address
	// AssetCount must always match len(Assets).
	AssetCount uint8
	Assets     []AssetSpec
}

// Validate checks the request's structural invariants. All checks run before
// any network I/O so a malformed request never burns gas.
func (r DeploymentRequest) Validate() error {
	if _, ok := supportedEnvs[r.TargetEnv]; !ok {
		return fmt.Errorf(
			"unsupported target environment %q, must be one of: %s",
			r.TargetEnv, strings.Join(SupportedEnvs(), ", "),
		)
	}
	if r.Source.PackageID == "" && r.Source.PublishPath == "" {
		return fmt.Errorf("package source is empty: set a package ID or a publish path")
	}
	if r.Source.PackageID != "" && r.Source.PublishPath != "" {
		return fmt.Errorf("ambiguous package source: both package ID and publish path are set")
	}
	if r.AssetCount == 0 {
		return fmt.Errorf("a RAMM cannot be deployed with zero assets")
	}
	if int(r.AssetCount) != len(r.Assets) {
		return fmt.Errorf(
			"asset count %d does not match the %d configured assets",
			r.AssetCount, len(r.Assets),
		)
	}
	for i, asset := range r.Assets {
		if err := asset.validate(); err != nil {
			return fmt.Errorf("asset %d: %w", i, err)
		}
	}
	return nil
}

func (a AssetSpec) validate() error {
	if strings.Count(a.AssetType, "::") != 2 {
		return fmt.Errorf("malformed asset type %q, want <address>::<module>::<name>", a.AssetType)
	}
	if a.AggregatorAddress == "" {
		return fmt.Errorf("missing aggregator address")
	}
	if a.DecimalPlaces < MinDecimalPlaces {
		return fmt.Errorf(
			"%d decimal places is below the minimum of %d",
			a.DecimalPlaces, MinDecimalPlaces,
		)
	}
	return nil
}

// SupportedEnvs lists the recognized target environments in a stable order.
func SupportedEnvs() []string {
	return []string{"active", "testnet", "mainnet"}
}
