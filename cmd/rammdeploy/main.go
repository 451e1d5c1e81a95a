package main

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/aldrin-labs/ramm-sui-deploy/internal/config"
	"github.com/aldrin-labs/ramm-sui-deploy/internal/core/application"
	"github.com/aldrin-labs/ramm-sui-deploy/internal/core/domain"
	"github.com/aldrin-labs/ramm-sui-deploy/internal/infrastructure/movebuild"
	suiinfra "github.com/aldrin-labs/ramm-sui-deploy/internal/infrastructure/sui"
)

func main() {
	app := &cli.App{
		Name:   "rammdeploy",
		Usage:  "deploy a RAMM to a Sui network with assets specified in a TOML config",
		Flags:  deployFlags,
		Action: deploy,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func deploy(ctx *cli.Context) error {
	logFile, err := initLogging(ctx.String(logLevelFlagName), ctx.String(logFileFlagName))
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(ctx.String(configFlagName))
	if err != nil {
		return err
	}
	if path := ctx.String(publishFlagName); path != "" {
		cfg.PkgAddrOrPath = path
	}
	req, err := cfg.DeploymentRequest()
	if err != nil {
		return err
	}

	fmt.Println(config.Render(req))
	if !ctx.Bool(yesFlagName) {
		ok, err := confirmDeployment()
		if err != nil {
			return err
		}
		if !ok {
			log.Info("deployment rejected by the operator, exiting")
			return nil
		}
	}

	rpcURL, err := suiinfra.EndpointForEnv(req.TargetEnv, cfg.RpcUrl)
	if err != nil {
		return err
	}
	keystorePath := cfg.KeystorePath
	if keystorePath == "" {
		if keystorePath, err = suiinfra.DefaultKeystorePath(); err != nil {
			return err
		}
	}
	signer, err := suiinfra.LoadSigner(keystorePath)
	if err != nil {
		return err
	}
	client := suiinfra.NewClient(rpcURL, signer)
	log.Infof("using address %s for publishing and deployment", client.Address())

	svc := application.NewService(client, movebuild.NewCompiler(), client.Address())
	result, err := svc.Deploy(ctx.Context, req)
	if err != nil {
		return err
	}

	printResult(result)
	return nil
}

// initLogging configures the level and, when a log file is given, tees the
// output to it. The returned file, if any, must be closed by the caller once
// logging is done.
func initLogging(level, logFile string) (*os.File, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log.SetLevel(lvl)

	if logFile == "" {
		return nil, nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", logFile, err)
	}
	log.SetOutput(io.MultiWriter(os.Stderr, f))
	return f, nil
}

func printResult(result *domain.DeploymentResult) {
	fmt.Println("Success! These are the IDs of the deployed objects:")
	fmt.Printf("  RAMM package:       %s\n", result.PackageID)
	fmt.Printf("  RAMM pool:          %s\n", result.PoolID)
	fmt.Printf("  admin capability:   %s\n", result.AdminCapID)
	fmt.Printf("  new asset capability: %s\n", result.NewAssetCapID)
	fmt.Printf("  final tx digest:    %s\n", result.FinalTxDigest)
}
