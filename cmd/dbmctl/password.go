package main

import (
	"github.com/spf13/cobra"
)

func newPasswordPolicyCommand(a *app) *cobra.Command {
	policy := &cobra.Command{
		Use:   "password-policy",
		Short: "Inspect password policies",
	}

	policy.AddCommand(&cobra.Command{
		Use:   "get <name>",
		Short: "Print the password policy with the given name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.client.GetPasswordPolicy(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(p)
		},
	})

	policy.AddCommand(&cobra.Command{
		Use:   "random-cycle",
		Short: "Print the schedule on which admin passwords are randomized",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cycle, err := a.client.QueryRandomCycle(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(cycle)
		},
	})

	return policy
}

func newRandomPasswordCommand(a *app) *cobra.Command {
	var securityType string
	cmd := &cobra.Command{
		Use:   "random-password",
		Short: "Generate a password satisfying the policy of a security type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := a.client.GetRandomPassword(cmd.Context(), securityType)
			if err != nil {
				return err
			}
			return a.print(map[string]string{"password": password})
		},
	}
	cmd.Flags().StringVar(&securityType, "security-type", "", "Security type whose policy the password has to satisfy")
	return cmd
}

func newVerifyPasswordCommand(a *app) *cobra.Command {
	var securityType string
	cmd := &cobra.Command{
		Use:   "verify-password <password>",
		Short: "Check a password against the policy of a security type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			strength, err := a.client.VerifyPasswordStrength(cmd.Context(), securityType, args[0])
			if err != nil {
				return err
			}
			return a.print(strength)
		},
	}
	cmd.Flags().StringVar(&securityType, "security-type", "", "Security type whose policy is checked")
	return cmd
}
