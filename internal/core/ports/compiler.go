package ports

import (
	"context"

	"github.com/aldrin-labs/ramm-sui-deploy/internal/core/domain"
)

// CompiledPackage is a Move package compiled into publishable form: the
// module bytecode plus the object IDs of its already published dependencies.
type CompiledPackage struct {
	Modules      [][]byte
	Dependencies []domain.ObjectID
}

// PackageCompiler compiles the Move package at a filesystem path.
type PackageCompiler interface {
	Compile(ctx context.Context, path string) (*CompiledPackage, error)
}
