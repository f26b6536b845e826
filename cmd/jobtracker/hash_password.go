package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var hashPasswordCommand = &cobra.Command{
	Use:   "hash-password <password>",
	Short: "Hash a password for ADMIN_PASSWORD_HASH",
	Args:  cobra.ExactArgs(1),
	RunE:  runHashPasswordCmd,
}

var hashPasswordCost int

func init() {
	hashPasswordCommand.Flags().IntVar(&hashPasswordCost, "cost", 12, "bcrypt cost (10-14)")
	rootCmd.AddCommand(hashPasswordCommand)
}

func runHashPasswordCmd(_ *cobra.Command, args []string) error {
	if hashPasswordCost < 10 || hashPasswordCost > 14 {
		return fmt.Errorf("bcrypt cost out of range: %d (must be 10-14)", hashPasswordCost)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(args[0]), hashPasswordCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	fmt.Println(string(hash))
	return nil
}
