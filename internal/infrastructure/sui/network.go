package sui

import "fmt"

const (
	testnetEndpoint = "https://fullnode.testnet.sui.io:443"
	mainnetEndpoint = "https://fullnode.mainnet.sui.io:443"
)

// EndpointForEnv maps a target environment to its fullnode RPC endpoint.
// A non-empty override wins regardless of environment; "active" has no
// default and requires one.
func EndpointForEnv(targetEnv, override string) (string, error) {
	if override != "" {
		return override, nil
	}
	switch targetEnv {
	case "testnet":
		return testnetEndpoint, nil
	case "mainnet":
		return mainnetEndpoint, nil
	case "active":
		return "", fmt.Errorf("target environment \"active\" has no default endpoint, set rpc_url")
	default:
		return "", fmt.Errorf("unknown target environment %q", targetEnv)
	}
}
