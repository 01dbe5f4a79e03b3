package cli

import (
	"fmt"

	"colDB/internal/config"

	"github.com/spf13/cobra"
)

func newExecCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "exec <query>...",
		Short: "Run queries non-interactively",
		Long: `Run each argument as one query, in order, against a fresh database.
Execution stops at the first failing query.

Example:
  coldb exec "LOAD" "INSERT INTO users (carol, 10.0.0.3)" "SAVE"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			r := GetRenderer(ctx)

			eng, err := CreateEngine(GetConfig(ctx), config.GetLogger(ctx))
			if err != nil {
				return err
			}

			for i, q := range args {
				res, err := eng.ExecuteLine(ctx, q)
				if err != nil {
					return fmt.Errorf("query %d: %w", i+1, err)
				}
				if res.Exit {
					return nil
				}
				r.Result(res)
			}
			return nil
		},
	}
}
