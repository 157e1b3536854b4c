package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"bld/internal/auth"
	"bld/internal/models"
	"bld/internal/util"
)

func newUserCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage dashboard accounts",
	}
	cmd.AddCommand(newUserAddCmd(a), newUserListCmd(a))
	return cmd
}

func newUserAddCmd(a *app) *cobra.Command {
	var u models.User
	var password string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an account",
		Example: `  bld user add --username admin --email admin@bld.com --name "John Smith" --role "Project Manager"
  BLD_USER_PASSWORD=secret bld user add --username dev --email dev@bld.com`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				return errors.New("password is required (--password or BLD_USER_PASSWORD)")
			}
			hash, err := auth.HashPassword(password)
			if err != nil {
				return err
			}
			u.PasswordHash = hash

			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			created, err := store.CreateUser(cmd.Context(), u)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created user %s (%s)\n", created.Username, created.ID)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&u.Username, "username", "", "Login name")
	f.StringVar(&u.Email, "email", "", "Email address")
	f.StringVar(&u.Name, "name", "", "Display name")
	f.StringVar(&u.Role, "role", "", "Role shown on the roster")
	f.StringVar(&password, "password", util.EnvOrDefault("BLD_USER_PASSWORD", ""), "Plaintext password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newUserListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the member roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			members, err := store.ListMembers(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "USERNAME\tNAME\tEMAIL\tROLE\tCREATED")
			for _, m := range members {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", m.Username, m.Name, m.Email, m.Role, m.CreatedAt.Format("2006-01-02"))
			}
			return w.Flush()
		},
	}
}
