package handlers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/imamik/redstack/internal/export"
)

// Synth composes the plan and writes the encoded document to outPath, or to
// stdout when outPath is empty.
func Synth(ctx context.Context, opts Options, format, outPath string) error {
	f, err := resolveFormat(format, outPath)
	if err != nil {
		return err
	}

	plan, err := composePlan(ctx, opts)
	if err != nil {
		return err
	}

	doc, err := export.Export(plan.Stack, plan.Graph)
	if err != nil {
		return err
	}
	data, err := export.Encode(doc, f)
	if err != nil {
		return err
	}

	if outPath == "" {
		_, err = stdout.Write(data)
		return err
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil { //nolint:gosec // plan documents hold no secrets
		return fmt.Errorf("failed to write plan: %w", err)
	}
	fmt.Fprintf(stderr, "Plan %s written to %s (%d resources)\n", doc.PlanID, outPath, len(doc.Resources))
	return nil
}

// resolveFormat uses the explicit format, or the extension of outPath.
func resolveFormat(format, outPath string) (export.Format, error) {
	if format == "" && outPath != "" {
		if ext := filepath.Ext(outPath); ext != "" {
			return export.ParseFormat(ext)
		}
	}
	return export.ParseFormat(format)
}
