// Command agrum-inspect lists the databases and schemas of a PostgreSQL
// server through the agrum inspector.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	provider "github.com/chanmix51/agrum/providers/postgres"
)

var dsn string

func main() {
	// Local development convenience; a missing .env file is fine.
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:           "agrum-inspect",
		Short:         "Inspect a PostgreSQL server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dsn, "dsn", os.Getenv("DATABASE_URL"),
		"PostgreSQL connection string (defaults to DATABASE_URL)")
	root.AddCommand(databasesCommand(), schemasCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func connect(ctx context.Context) (*pgx.Conn, error) {
	if dsn == "" {
		return nil, fmt.Errorf("no connection string: set --dsn or DATABASE_URL")
	}
	return pgx.Connect(ctx, dsn)
}

func databasesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "databases",
		Short: "List the databases visible on the server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			conn, err := connect(ctx)
			if err != nil {
				return err
			}
			defer conn.Close(ctx)

			infos, err := provider.NewInspector(conn).Databases(ctx)
			if err != nil {
				return err
			}

			name := color.New(color.Bold)
			for _, info := range infos {
				name.Print(info.Name)
				fmt.Printf("\towner=%s encoding=%s size=%s", info.Owner, info.Encoding, info.Size)
				if info.Description != "" {
					fmt.Printf("\t%s", color.CyanString(info.Description))
				}
				fmt.Println()
			}
			return nil
		},
	}
}

func schemasCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schemas",
		Short: "List the schemas of the connected database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			conn, err := connect(ctx)
			if err != nil {
				return err
			}
			defer conn.Close(ctx)

			infos, err := provider.NewInspector(conn).Schemas(ctx)
			if err != nil {
				return err
			}

			name := color.New(color.Bold)
			for _, info := range infos {
				name.Print(info.Name)
				fmt.Printf("\towner=%s relations=%d", info.Owner, info.Relations)
				if info.Description != "" {
					fmt.Printf("\t%s", color.CyanString(info.Description))
				}
				fmt.Println()
			}
			return nil
		},
	}
}
