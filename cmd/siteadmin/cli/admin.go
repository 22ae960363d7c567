package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arpmotors/siteadmin/internal/model"
	"github.com/arpmotors/siteadmin/internal/service"
	"github.com/arpmotors/siteadmin/internal/store"
)

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage the admin account",
		Long:  "Create and list administrative users who can manage site content through the admin API.",
	}

	cmd.AddCommand(newAdminCreateCmd())
	cmd.AddCommand(newAdminListCmd())

	return cmd
}

// ---------- admin create ----------

func newAdminCreateCmd() *cobra.Command {
	var (
		username  string
		email     string
		password  string
		superuser bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new admin user",
		Example: `  siteadmin admin create --username admin --email admin@example.com --password secret
  siteadmin admin create --username admin --email admin@example.com  # prompts for password`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminCreate(username, email, password, superuser)
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Admin username (required)")
	cmd.Flags().StringVar(&email, "email", "", "Admin email address")
	cmd.Flags().StringVar(&password, "password", "", "Admin password (prompted if omitted)")
	cmd.Flags().BoolVar(&superuser, "superuser", false, "Mark the account as superuser")
	cmd.MarkFlagRequired("username")

	return cmd
}

func runAdminCreate(username, email, password string, superuser bool) error {
	// Prompt for password if not provided
	if password == "" {
		fmt.Print("Password: ")
		pwBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Println()
		password = string(pwBytes)

		fmt.Print("Confirm password: ")
		confirmBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		fmt.Println()

		if password != string(confirmBytes) {
			return fmt.Errorf("passwords do not match")
		}
	}

	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	st, err := store.New(resolveDataDir())
	if err != nil {
		return fmt.Errorf("open content store: %w", err)
	}
	defer st.Close()

	hash, err := service.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	admin := &model.Admin{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		IsSuperuser:  superuser,
	}
	if err := st.CreateAdmin(context.Background(), admin); err != nil {
		if err == store.ErrConflict {
			return fmt.Errorf("an admin named %q already exists", username)
		}
		return fmt.Errorf("create admin: %w", err)
	}

	fmt.Printf("Created admin user %q\n", username)
	return nil
}

// ---------- admin list ----------

func newAdminListCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all admin users",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminList(jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func runAdminList(jsonOutput bool) error {
	st, err := store.New(resolveDataDir())
	if err != nil {
		return fmt.Errorf("open content store: %w", err)
	}
	defer st.Close()

	admins, err := st.ListAdmins(context.Background())
	if err != nil {
		return fmt.Errorf("list admins: %w", err)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(admins)
	}

	if len(admins) == 0 {
		fmt.Println("No admin users configured. Use 'siteadmin admin create' to create one.")
		return nil
	}

	fmt.Printf("%-24s %-30s %-10s\n", "USERNAME", "EMAIL", "SUPERUSER")
	fmt.Printf("%-24s %-30s %-10s\n", "--------", "-----", "---------")
	for _, a := range admins {
		super := "no"
		if a.IsSuperuser {
			super = "yes"
		}
		fmt.Printf("%-24s %-30s %-10s\n", a.Username, a.Email, super)
	}

	return nil
}
