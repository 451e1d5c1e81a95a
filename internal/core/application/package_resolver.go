package application

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/aldrin-labs/ramm-sui-deploy/internal/core/domain"
)

// resolvePackage obtains the RAMM library's package ID, either verbatim from
// the configuration or by compiling and publishing the package at the
// configured path. The reuse branch performs no network calls.
func (s *deployerService) resolvePackage(
	ctx context.Context, src domain.PackageSource,
) (domain.ObjectID, error) {
	if !src.IsPublish() {
		log.Info("RAMM library package ID read from config")
		return src.PackageID, nil
	}

	log.Infof("publishing RAMM library at %s", src.PublishPath)
	compiled, err := s.compiler.Compile(ctx, src.PublishPath)
	if err != nil {
		return "", fmt.Errorf("failed to compile Move package at %s: %w", src.PublishPath, err)
	}

	res, err := s.client.PublishPackage(
		ctx, s.sender, compiled.Modules, compiled.Dependencies, publishGasBudget,
	)
	if err != nil {
		return "", fmt.Errorf("failed to publish Move package: %w", err)
	}
	if err := res.Err(); err != nil {
		return "", err
	}
	log.Infof("publish tx executed: %s", res.Digest)

	return packageIDFromEffects(res)
}

// packageIDFromEffects selects the published package from the publish tx's
// created objects. A publication creates exactly one immutable object, the
// package itself; any other count means the ledger's publish semantics
// changed under us.
func packageIDFromEffects(res *domain.ExecutionResult) (domain.ObjectID, error) {
	immutable := res.CreatedImmutable()
	if len(immutable) != 1 {
		return "", fmt.Errorf(
			"%w: publish tx %s created %d immutable objects, want exactly 1 (the package)",
			domain.ErrProtocolInvariant, res.Digest, len(immutable),
		)
	}
	return immutable[0].Ref.ID, nil
}
