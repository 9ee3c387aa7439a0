// Package main is the standalone image inlining entry point.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.trai.ch/ess/internal/adapters/fs"
	"go.trai.ch/ess/internal/adapters/inline"
	"go.trai.ch/ess/internal/adapters/logger"
	"go.trai.ch/ess/internal/build"
	"go.trai.ch/ess/internal/core/domain"
	"go.trai.ch/zerr"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		// zerr prints a report with metadata when using %+v
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var roots []string
	cmd := &cobra.Command{
		Use:           "inline_images [-I dir]... <input> <output>",
		Short:         "Embed a stylesheet's image references as data URIs",
		Long:          "Reads a CSS file, embeds every resolvable image reference as a data URI, and writes the result to a file or to stdout when output is '-'.",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), roots, args[0], args[1], cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringArrayVarP(&roots, "include", "I", nil, "Auxiliary search root, tried in order after the input's directory (may repeat)")
	return cmd
}

func run(ctx context.Context, roots []string, input, output string, stdout io.Writer) error {
	content, err := os.ReadFile(input) //nolint:gosec // path is provided by user
	if err != nil {
		return zerr.Wrap(err, "failed to read input stylesheet")
	}

	// The input's directory is the primary resolution root; -I roots are
	// consulted after it, in the order given.
	resolver := fs.NewResolver(filepath.Dir(input), roots)
	asset := domain.NewAsset(domain.NewAssetKey(fs.DefaultPackage, filepath.Base(input)), content)

	fetch := func(ctx context.Context, url string, from domain.AssetKey) (domain.Asset, error) {
		return resolver.Resolve(ctx, url, from)
	}
	result, err := inline.NewRewriter().Inline(ctx, asset, domain.InlineAll, fetch)
	if err != nil {
		return err
	}

	log := logger.New().WithAsset(asset.Key.String())
	for _, msg := range result.Messages {
		log.Info(msg)
	}

	if output == "-" {
		_, err = stdout.Write(result.CSS)
		return err
	}
	if err := os.WriteFile(output, result.CSS, 0o644); err != nil { //nolint:gosec // outputs are world-readable build artifacts
		return zerr.Wrap(domain.ErrOutputWriteFailed, err.Error())
	}
	return nil
}
