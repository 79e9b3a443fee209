package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/mindcheck/internal/cli"
)

func newImportCatalogCommand() *cobra.Command {
	var dbPath string
	var catalogPath string

	command := &cobra.Command{
		Use:   "import-catalog",
		Short: "Store a catalog JSON document in the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunImportCatalogCommand(dbPath, catalogPath, cmd.OutOrStdout())
		},
	}
	command.Flags().StringVar(&dbPath, "db", envOrDefault("DB_PATH", filepath.Join("data", "mindcheck.db")), "SQLite database path")
	command.Flags().StringVar(&catalogPath, "catalog", envOrDefault("CATALOG_PATH", filepath.Join("data", "data.json")), "catalog JSON file")
	return command
}

func newHashPasswordCommand() *cobra.Command {
	var generate bool

	command := &cobra.Command{
		Use:   "hash-password",
		Short: "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunHashPasswordCommand(os.Stdin, cmd.OutOrStdout(), generate)
		},
	}
	command.Flags().BoolVar(&generate, "generate", false, "generate a random password instead of prompting")
	return command
}

func newCheckCommand() *cobra.Command {
	var options cli.CheckOptions
	var answers string

	command := &cobra.Command{
		Use:   "check",
		Short: "Score answers and match symptoms from the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseAnswers(answers)
			if err != nil {
				return err
			}
			options.Answers = values
			return cli.RunCheckCommand(options, cmd.OutOrStdout())
		},
	}
	command.Flags().StringVar(&options.CatalogPath, "catalog", envOrDefault("CATALOG_PATH", filepath.Join("data", "data.json")), "catalog JSON file")
	command.Flags().StringSliceVar(&options.Symptoms, "symptoms", nil, "comma-separated symptom identifiers")
	command.Flags().StringVar(&answers, "answers", "", "comma-separated answers for q1..q9, each 0-3")
	command.Flags().StringVar(&options.Language, "lang", envOrDefault("DEFAULT_LANGUAGE", "en"), "report language")
	return command
}

// parseAnswers reads "1,0,2" style input. Empty input means no answers.
func parseAnswers(raw string) ([]int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	values := make([]int, 0, len(parts))
	for index, part := range parts {
		value, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("answer %d: %q is not a number", index+1, part)
		}
		values = append(values, value)
	}
	return values, nil
}

func envOrDefault(key string, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
