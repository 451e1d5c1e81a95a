package sui

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pattonkan/sui-go/suisigner"
)

const ed25519SchemeFlag = 0x00

// DefaultKeystorePath returns the sui CLI's standard keystore location.
func DefaultKeystorePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".sui", "sui_config", "sui.keystore"), nil
}

// LoadSigner reads a sui CLI keystore file (a JSON array of base64 encoded
// flag-prefixed private keys) and builds a signer from its first ed25519 key,
// which is the client's active account.
func LoadSigner(path string) (*suisigner.Signer, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keystore %s: %w", path, err)
	}
	var encoded []string
	if err := json.Unmarshal(raw, &encoded); err != nil {
		return nil, fmt.Errorf("failed to parse keystore %s: %w", path, err)
	}
	if len(encoded) == 0 {
		return nil, fmt.Errorf("keystore %s holds no keys", path)
	}

	for _, entry := range encoded {
		blob, err := base64.StdEncoding.DecodeString(entry)
		if err != nil {
			return nil, fmt.Errorf("failed to decode keystore entry: %w", err)
		}
		if len(blob) != 33 || blob[0] != ed25519SchemeFlag {
			continue
		}
		return suisigner.NewSigner(blob[1:], suisigner.KeySchemeFlagEd25519), nil
	}
	return nil, fmt.Errorf("keystore %s holds no ed25519 keys", path)
}
