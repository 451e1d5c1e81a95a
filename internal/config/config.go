package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/aldrin-labs/ramm-sui-deploy/internal/core/domain"
)

// ErrConfigValidation wraps structural validation failures of the deployment
// config, as opposed to TOML syntax or filesystem errors. Callers can use
// errors.Is to tell the two apart.
var ErrConfigValidation = errors.New("invalid deployment config")

var envReplacer = strings.NewReplacer("-", "_", ".", "_")

// Asset is the TOML representation of one RAMM asset.
type Asset struct {
	AssetType          string `mapstructure:"asset_type"`
	AggregatorAddress  string `mapstructure:"aggregator_address"`
	MinimumTradeAmount uint64 `mapstructure:"minimum_trade_amount"`
	DecimalPlaces      uint8  `mapstructure:"decimal_places"`
}

// Config is the TOML representation of a RAMM deployment.
type Config struct {
	// TargetEnv is the Sui network environment to deploy to: testnet,
	// mainnet, or active. "active" defers the endpoint choice to RpcUrl.
	TargetEnv string `mapstructure:"target_env"`
	// PkgAddrOrPath is either the object ID of an already published RAMM
	// library, or the filesystem path of the Move package to publish.
	PkgAddrOrPath        string  `mapstructure:"ramm_pkg_addr_or_path"`
	FeeCollectionAddress string  `mapstructure:"fee_collection_address"`
	AssetCount           uint8   `mapstructure:"asset_count"`
	Assets               []Asset `mapstructure:"assets"`

	// RpcUrl overrides the default fullnode endpoint of the target
	// environment. Required when TargetEnv is "active".
	RpcUrl string `mapstructure:"rpc_url"`
	// KeystorePath points at the Sui client keystore holding the active
	// account's key. Defaults to the standard sui CLI location.
	KeystorePath string `mapstructure:"keystore_path"`
}

// Load reads the deployment TOML at the given path. Values can be overridden
// with RAMM_DEPLOY_* environment variables. Load only parses; structural
// validation happens in DeploymentRequest.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("RAMM_DEPLOY")
	v.SetEnvKeyReplacer(envReplacer)
	v.AutomaticEnv()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read deployment config %s: %w", path, err)
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode deployment config %s: %w", path, err)
	}
	return &cfg, nil
}

// DeploymentRequest converts the parsed config into a validated request.
// Any invariant violation is wrapped in ErrConfigValidation and reported
// before the pipeline makes a single network call.
func (c *Config) DeploymentRequest() (domain.DeploymentRequest, error) {
	req := domain.DeploymentRequest{
		TargetEnv:            c.TargetEnv,
		Source:               packageSource(c.PkgAddrOrPath),
		FeeCollectionAddress: domain.Address(c.FeeCollectionAddress),
		AssetCount:           c.AssetCount,
		Assets:               make([]domain.AssetSpec, len(c.Assets)),
	}
	for i, asset := range c.Assets {
		req.Assets[i] = domain.AssetSpec{
			AssetType:          asset.AssetType,
			AggregatorAddress:  domain.Address(asset.AggregatorAddress),
			MinimumTradeAmount: asset.MinimumTradeAmount,
			DecimalPlaces:      asset.DecimalPlaces,
		}
	}
	if c.TargetEnv == "active" && c.RpcUrl == "" {
		return domain.DeploymentRequest{}, fmt.Errorf(
			"%w: target_env \"active\" requires rpc_url to be set", ErrConfigValidation,
		)
	}
	if err := req.Validate(); err != nil {
		return domain.DeploymentRequest{}, fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}
	return req, nil
}

// packageSource classifies the configured value as a published package ID or
// a filesystem path: object IDs are 0x-prefixed hex, everything else is a
// path to a Move package to publish.
func packageSource(addrOrPath string) domain.PackageSource {
	if isObjectID(addrOrPath) {
		return domain.PackageSource{PackageID: domain.ObjectID(addrOrPath)}
	}
	return domain.PackageSource{PublishPath: addrOrPath}
}

func isObjectID(s string) bool {
	if !strings.HasPrefix(s, "0x") || len(s) <= 2 {
		return false
	}
	for _, r := range s[2:] {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
