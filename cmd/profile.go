package main

import (
	"context"
	"encoding/json"
	"os"
	"portal/internal/config"
	"portal/pkg/domain"
	"portal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
)

// profileCommand constructs the 'profile' subcommand that registers or
// updates a portal profile. Tokens for the printed ID are issued with 'jwt'.
func profileCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Creates or updates a profile",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			id, _ := cmd.Flags().GetString("id")
			email, _ := cmd.Flags().GetString("email")
			name, _ := cmd.Flags().GetString("name")
			role, _ := cmd.Flags().GetString("role")

			userID := domain.UserID(uuid.New())
			if id != "" {
				var err error
				if userID, err = domain.ParseUserID(id); err != nil {
					logger.Fatal(ctx, "invalid profile ID", zap.Error(err))
				}
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			p := getPortal(ctx, cfg, strg, noop.NewMeterProvider().Meter("portal"))
			profile, err := p.UpsertProfile(ctx, domain.Profile{
				ID:       userID,
				Email:    email,
				FullName: name,
				Role:     domain.Role(role),
			})
			if err != nil {
				logger.Fatal(ctx, "could not save profile", zap.Error(err))
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			_ = enc.Encode(profile)
		},
	}

	cmd.Flags().String("id", "", "Profile ID to update; a new ID is generated when empty")
	cmd.Flags().String("email", "", "Email address")
	cmd.Flags().String("name", "", "Full name")
	cmd.Flags().String("role", string(domain.RoleStudent), "Role: student, faculty or admin")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
