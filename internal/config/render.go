package config

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/aldrin-labs/ramm-sui-deploy/internal/core/domain"
)

var (
	headerColor = color.New(color.FgWhite, color.BgHiBlack)
	fieldColor  = color.New(color.FgGreen)
	assetColor  = color.New(color.FgCyan)
	assetHeader = color.New(color.FgMagenta)
)

// Render formats a deployment request for the operator to review before
// confirming, color-coded with per-asset indented blocks.
func Render(req domain.DeploymentRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", headerColor.Sprint("RAMM Deployment Configuration"))
	fmt.Fprintf(&b, "\t%s: %s\n", fieldColor.Sprint("target environment"), req.TargetEnv)
	fmt.Fprintf(&b, "\t%s: %s\n", fieldColor.Sprint("RAMM package source"), req.Source)
	fmt.Fprintf(
		&b, "\t%s: %s\n",
		fieldColor.Sprint("fee collection address"), req.FeeCollectionAddress,
	)
	fmt.Fprintf(&b, "\t%s: %d\n", fieldColor.Sprint("asset count"), req.AssetCount)
	fmt.Fprintf(&b, "\t%s:\n", fieldColor.Sprint("asset list"))
	for _, asset := range req.Assets {
		renderAsset(&b, asset, 2)
	}
	fmt.Fprintf(&b, "%s", headerColor.Sprint("End of RAMM Deployment Configuration"))

	return b.String()
}

func renderAsset(b *strings.Builder, asset domain.AssetSpec, tabs int) {
	pad := strings.Repeat("\t", tabs)
	inner := strings.Repeat("\t", tabs+1)

	fmt.Fprintf(b, "%s%s:\n", pad, assetHeader.Sprint("asset data"))
	fmt.Fprintf(b, "%s%s: %s\n", inner, assetColor.Sprint("asset type"), asset.AssetType)
	fmt.Fprintf(
		b, "%s%s: %s\n", inner,
		assetColor.Sprint("aggregator address"), asset.AggregatorAddress,
	)
	fmt.Fprintf(
		b, "%s%s: %d\n", inner,
		assetColor.Sprint("minimum trade amount"), asset.MinimumTradeAmount,
	)
	fmt.Fprintf(b, "%s%s: %d\n", inner, assetColor.Sprint("decimal places"), asset.DecimalPlaces)
}
