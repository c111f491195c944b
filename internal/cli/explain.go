package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nlaakso/agentpulse/internal/enrich"
	"github.com/nlaakso/agentpulse/internal/format"
	"github.com/nlaakso/agentpulse/internal/generate"
	"github.com/nlaakso/agentpulse/internal/query"
	"github.com/nlaakso/agentpulse/internal/rng"
	"github.com/nlaakso/agentpulse/internal/trust"
)

var (
	explainID    string
	explainSeed  int64
	explainDepth string
)

func init() {
	rootCmd.AddCommand(explainCmd)
	explainCmd.Flags().StringVar(&explainID, "id", "", "Decision id, e.g. dec-0007")
	explainCmd.Flags().Int64Var(&explainSeed, "seed", 1337, "Random seed")
	explainCmd.Flags().StringVar(&explainDepth, "depth", "intermediate", "Explanation depth: beginner, intermediate, expert")
	explainCmd.MarkFlagRequired("id")
}

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Explain one decision from the seeded batch",
	RunE:  runExplain,
}

func runExplain(cmd *cobra.Command, args []string) error {
	depth := query.Depth(explainDepth)
	switch depth {
	case query.DepthBeginner, query.DepthIntermediate, query.DepthExpert:
	default:
		depth = query.DepthIntermediate
	}

	now := time.Now().UTC()
	src := rng.New(explainSeed)
	events := generate.Batch(src, generate.Config{Count: 60, Now: now})
	enriched := enrich.Batch(src, events, trust.DefaultConfig(), now)

	for _, d := range enriched {
		if d.ID == explainID {
			out, err := json.MarshalIndent(map[string]any{
				"decision":    format.Project(d, query.FormatFull, depth),
				"explanation": format.Explanation(d, depth),
			}, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode decision: %w", err)
			}
			fmt.Fprintln(os.Stdout, string(out))
			return nil
		}
	}
	return fmt.Errorf("decision %q not found in seed %d batch", explainID, explainSeed)
}
