package commands

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/chronos/internal/core/domain"
)

// resolutionJSON is the machine-readable form of a resolution.
type resolutionJSON struct {
	GroupID string                  `json:"group_id"`
	Status  string                  `json:"status"`
	Record  *domain.CachedTimeTable `json:"record"`
}

func (c *CLI) newTimetableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timetable [group-ids...]",
		Short: "Resolve the timetable of one or more groups",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			asJSON, _ := cmd.Flags().GetBool("json")

			a, _, err := c.application(cmd)
			if err != nil {
				return err
			}

			results := a.ResolveAll(cmd.Context(), args)

			out := cmd.OutOrStdout()
			if asJSON {
				err = writeResolutionsJSON(out, results)
			} else {
				_, err = io.WriteString(out, renderResolutions(out, results))
			}
			if err != nil {
				return err
			}

			return exitStatus(results)
		},
	}
	cmd.Flags().Bool("json", false, "Print resolutions as JSON")
	return cmd
}

func writeResolutionsJSON(w io.Writer, results []domain.Resolution) error {
	payload := make([]resolutionJSON, 0, len(results))
	for _, r := range results {
		payload = append(payload, resolutionJSON{
			GroupID: r.GroupID,
			Status:  r.Status.String(),
			Record:  r.Record,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

// exitStatus maps the worst resolution to the command error.
// Any ERROR wins over NOT_FOUND.
func exitStatus(results []domain.Resolution) error {
	var notFound bool
	for _, r := range results {
		switch r.Status {
		case domain.StatusError:
			return domain.ErrResolutionFailed
		case domain.StatusNotFound:
			notFound = true
		}
	}
	if notFound {
		return domain.ErrGroupNotFound
	}
	return nil
}
