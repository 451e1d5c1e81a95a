package movebuild

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"

	log "github.com/sirupsen/logrus"

	"github.com/aldrin-labs/ramm-sui-deploy/internal/core/domain"
	"github.com/aldrin-labs/ramm-sui-deploy/internal/core/ports"
)

const defaultSuiBin = "sui"

// Compiler compiles Move packages by shelling out to the sui CLI with
// --dump-bytecode-as-base64, which prints the module bytecode and the
// package's published dependency IDs as JSON.
type Compiler struct {
	suiBin string
}

var _ ports.PackageCompiler = (*Compiler)(nil)

func NewCompiler() *Compiler {
	return &Compiler{suiBin: defaultSuiBin}
}

func (c *Compiler) Compile(ctx context.Context, path string) (*ports.CompiledPackage, error) {
	log.Infof("compiling Move package at %s", path)
	cmd := exec.CommandContext(
		ctx, c.suiBin, "move", "build", "--dump-bytecode-as-base64", "--path", path,
	)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf(
				"sui move build failed for %s: %s", path, string(exitErr.Stderr),
			)
		}
		return nil, fmt.Errorf("failed to run %s: %w", c.suiBin, err)
	}
	return parseBuildOutput(out)
}

type buildOutput struct {
	Modules      []string `json:"modules"`
	Dependencies []string `json:"dependencies"`
}

func parseBuildOutput(out []byte) (*ports.CompiledPackage, error) {
	var dump buildOutput
	if err := json.Unmarshal(out, &dump); err != nil {
		return nil, fmt.Errorf("failed to parse sui move build output: %w", err)
	}
	if len(dump.Modules) == 0 {
		return nil, fmt.Errorf("sui move build produced no modules")
	}

	compiled := &ports.CompiledPackage{
		Modules:      make([][]byte, len(dump.Modules)),
		Dependencies: make([]domain.ObjectID, len(dump.Dependencies)),
	}
	for i, encoded := range dump.Modules {
		module, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("failed to decode module %d bytecode: %w", i, err)
		}
		compiled.Modules[i] = module
	}
	for i, dep := range dump.Dependencies {
		compiled.Dependencies[i] = domain.ObjectID(dep)
	}
	return compiled, nil
}
