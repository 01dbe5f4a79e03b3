package cli

import (
	"fmt"

	"colDB/internal/config"
	"colDB/internal/storage/filestore"

	"github.com/spf13/cobra"
)

func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "Print every table of a database file",
		Long:  `Decode a database file and print each table. Defaults to the configured db_file.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := GetConfig(ctx)
			r := GetRenderer(ctx)

			path := cfg.DBFile
			if len(args) == 1 {
				path = args[0]
			}

			s, err := filestore.New(path, config.GetLogger(ctx)).Load()
			if err != nil {
				return err
			}

			tables := s.Tables()
			if len(tables) == 0 {
				r.Title(fmt.Sprintf("%s: no tables", path))
				return nil
			}

			for _, name := range tables {
				cols, rows, err := s.Scan(name)
				if err != nil {
					return err
				}
				r.Title(fmt.Sprintf("Table: %s (%d rows)", name, len(rows)))
				r.Rows(cols, rows)
			}
			return nil
		},
	}
}
