package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-story/internal/content"
	"github.com/KirkDiggler/rpg-story/internal/engine"
	"github.com/KirkDiggler/rpg-story/internal/entities/game"
	"github.com/KirkDiggler/rpg-story/internal/errors"
	contentrepo "github.com/KirkDiggler/rpg-story/internal/repositories/content"
)

var (
	lintFile     string
	exportFormat string
	exportOutput string
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Inspect and manage content bundles",
	Long: `Content commands lint, export and import the bundle stories are played from.

The bundle is seeded from --content or the embedded default the first time it is read.`,
}

var contentLintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Report authoring defects in a bundle",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			return lintContent(ctx, a, lintFile, cmd.OutOrStdout())
		})
	},
}

var contentExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the stored bundle as YAML or JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, err := content.ParseFormat(exportFormat)
		if err != nil {
			return err
		}
		return withApp(cmd, func(ctx context.Context, a *app) error {
			return exportContent(ctx, a, format, exportOutput, cmd.OutOrStdout())
		})
	},
}

var contentImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the stored bundle with a YAML or JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			return importContent(ctx, a, args[0], cmd.OutOrStdout())
		})
	},
}

func init() {
	contentLintCmd.Flags().StringVar(&lintFile, "file", "", "lint a bundle file instead of the stored bundle")
	contentExportCmd.Flags().StringVar(&exportFormat, "format", string(content.FormatYAML), "yaml or json")
	contentExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "file to write (default stdout)")

	contentCmd.AddCommand(contentLintCmd)
	contentCmd.AddCommand(contentExportCmd)
	contentCmd.AddCommand(contentImportCmd)
}

// withApp wires the stores for a one shot command
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	ctx := cmd.Context()
	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.close()
	return fn(ctx, a)
}

func (a *app) storedContent(ctx context.Context) (*game.GameData, error) {
	out, err := a.content.Get(ctx, contentrepo.GetInput{BundleID: a.cfg.BundleID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get content bundle %s", a.cfg.BundleID)
	}
	return out.Data, nil
}

// lintContent prints every issue and fails when there is at least one
func lintContent(ctx context.Context, a *app, path string, w io.Writer) error {
	var (
		data *game.GameData
		err  error
	)
	if path != "" {
		data, err = content.Load(path)
	} else {
		data, err = a.storedContent(ctx)
	}
	if err != nil {
		return err
	}

	issues := engine.LintContent(data)
	for _, issue := range issues {
		fmt.Fprintln(w, issue.String())
	}
	if len(issues) > 0 {
		return errors.FailedPreconditionf("content has %d issues", len(issues))
	}

	fmt.Fprintf(w, "ok: %d stories, %d items, %d shops\n", len(data.Stories), len(data.Items), len(data.Shops))
	return nil
}

func exportContent(ctx context.Context, a *app, format content.Format, path string, w io.Writer) error {
	data, err := a.storedContent(ctx)
	if err != nil {
		return err
	}

	raw, err := content.Encode(data, format)
	if err != nil {
		return err
	}

	if path == "" {
		if _, err := w.Write(raw); err != nil {
			return errors.Wrap(err, "failed to write bundle")
		}
		return nil
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	slog.Info("Exported content bundle", "bundle_id", a.cfg.BundleID, "path", path, "format", format)
	return nil
}

// importContent stores the file under the configured bundle id. Lint issues are
// reported but do not block the import.
func importContent(ctx context.Context, a *app, path string, w io.Writer) error {
	data, err := content.Load(path)
	if err != nil {
		return err
	}

	issues := engine.LintContent(data)
	if len(issues) > 0 {
		slog.Warn("Imported bundle has content issues",
			"path", path,
			"issues", len(issues),
		)
	}

	if _, err := a.content.Save(ctx, contentrepo.SaveInput{BundleID: a.cfg.BundleID, Data: data}); err != nil {
		return errors.Wrapf(err, "failed to save content bundle %s", a.cfg.BundleID)
	}

	fmt.Fprintf(w, "imported %s as %s: %d stories, %d issues\n", path, a.cfg.BundleID, len(data.Stories), len(issues))
	return nil
}
