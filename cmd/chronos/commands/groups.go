package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"go.trai.ch/chronos/internal/core/domain"
)

func (c *CLI) newGroupsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groups",
		Short: "List the groups published upstream",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")

			a, log, err := c.application(cmd)
			if err != nil {
				return err
			}

			groups, err := a.ListGroups(cmd.Context())
			if err != nil {
				// An unavailable group list is reported as an empty one.
				log.Warn("group list unavailable, reporting no groups")
				groups = []domain.Group{}
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(groups)
			}

			_, err = out.Write([]byte(renderGroups(out, groups)))
			return err
		},
	}
	cmd.Flags().Bool("json", false, "Print groups as JSON")
	return cmd
}
