package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"portal/internal/config"
	"portal/pkg/domain"
	"portal/pkg/storage"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var errEntitiesRemain = errors.New("extraction results remain")

// inspectEntities renders per-status extraction coverage.
func inspectEntities(ctx context.Context, strg storage.MaintenanceStorage, out io.Writer) error {
	stats, err := strg.EntityStats(ctx)
	if err != nil {
		return fmt.Errorf("could not fetch entity stats: %w", err)
	}

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"Status", "Abstracts", "With entities", "Without entities"})

	var total, with int64
	for _, s := range stats {
		t.AppendRow(table.Row{s.Status, s.Total, s.WithEntities, s.Total - s.WithEntities})
		total += s.Total
		with += s.WithEntities
	}
	t.AppendFooter(table.Row{"Total", total, with, total - with})
	t.Render()

	return nil
}

// verifyEntities fails when any abstract still carries an extraction result.
func verifyEntities(ctx context.Context, strg storage.MaintenanceStorage, out io.Writer) error {
	remaining, err := strg.RemainingEntities(ctx)
	if err != nil {
		return fmt.Errorf("could not count remaining entities: %w", err)
	}
	if remaining > 0 {
		return fmt.Errorf("%w: %d abstracts", errEntitiesRemain, remaining)
	}

	_, _ = fmt.Fprintln(out, "no extraction results remain")

	return nil
}

func parseAbstractIDs(args []string) ([]domain.AbstractID, error) {
	ids := make([]domain.AbstractID, 0, len(args))
	for _, a := range args {
		id, err := domain.ParseAbstractID(a)
		if err != nil {
			return nil, fmt.Errorf("invalid abstract ID %q: %w", a, err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// entitiesCommand groups maintenance of stored extraction results, used
// before re-running extraction with a changed taxonomy.
func entitiesCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "entities",
		Short:        "Inspects and resets stored extraction results",
		SilenceUsage: true,
	}

	// withStorage runs fn against postgres.
	withStorage := func(fn func(ctx context.Context, strg storage.Storage, out io.Writer) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			return fn(ctx, strg, cmd.OutOrStdout())
		}
	}

	report := func(out io.Writer, cleared int64) {
		_, _ = fmt.Fprintf(out, "cleared %d extraction results\n", cleared)
	}

	inspect := &cobra.Command{
		Use:   "inspect",
		Short: "Prints extraction coverage per status",
		RunE: withStorage(func(ctx context.Context, strg storage.Storage, out io.Writer) error {
			return inspectEntities(ctx, strg, out)
		}),
	}

	clearIDs := &cobra.Command{
		Use:   "clear <abstract-id>...",
		Short: "Clears the extraction results of the given abstracts",
		Args:  cobra.MinimumNArgs(1),
	}
	clearIDs.RunE = func(cmd *cobra.Command, args []string) error {
		return withStorage(func(ctx context.Context, strg storage.Storage, out io.Writer) error {
			ids, err := parseAbstractIDs(args)
			if err != nil {
				return err
			}
			cleared, err := strg.ClearEntities(ctx, ids...)
			if err != nil {
				return err //nolint: wrapcheck
			}
			report(out, cleared)

			return nil
		})(cmd, args)
	}

	clearRejected := &cobra.Command{
		Use:   "clear-rejected",
		Short: "Clears the extraction results of rejected abstracts",
		RunE: withStorage(func(ctx context.Context, strg storage.Storage, out io.Writer) error {
			cleared, err := strg.ClearEntitiesByStatus(ctx, domain.AbstractStatusRejected)
			if err != nil {
				return err //nolint: wrapcheck
			}
			report(out, cleared)

			return nil
		}),
	}

	clearAll := &cobra.Command{
		Use:   "clear-all",
		Short: "Clears every extraction result",
	}
	clearAll.Flags().Bool("yes", false, "Confirm clearing every extraction result")
	clearAll.RunE = func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return errors.New("refusing to clear every extraction result without --yes")
		}

		return withStorage(func(ctx context.Context, strg storage.Storage, out io.Writer) error {
			cleared, err := strg.ClearAllEntities(ctx)
			if err != nil {
				return err //nolint: wrapcheck
			}
			report(out, cleared)

			return verifyEntities(ctx, strg, out)
		})(cmd, args)
	}

	verify := &cobra.Command{
		Use:   "verify",
		Short: "Fails when any extraction result remains",
		RunE: withStorage(func(ctx context.Context, strg storage.Storage, out io.Writer) error {
			return verifyEntities(ctx, strg, out)
		}),
	}

	cmd.AddCommand(inspect, clearIDs, clearRejected, clearAll, verify)

	return cmd
}
