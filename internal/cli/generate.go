package cli

import (
	"encoding/json"
	"fmt"
	"net/url"
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
	genCount  int
	genSeed   int64
	genAgent  string
	genFormat string
)

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().IntVar(&genCount, "count", 60, "Number of decisions to generate")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 1337, "Random seed")
	generateCmd.Flags().StringVar(&genAgent, "agent", "", "Only emit decisions from this agent")
	generateCmd.Flags().StringVar(&genFormat, "format", "standard", "Output shape: minimal, standard, full")
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an enriched decision batch to stdout",
	Long:  "Produces the same batch the API would serve for the given seed,\nenriched and projected, as a JSON array on stdout.",
	RunE:  runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if genCount <= 0 || genCount > 500 {
		return fmt.Errorf("count %d out of range (1-500)", genCount)
	}

	now := time.Now().UTC()
	src := rng.New(genSeed)
	events := generate.Batch(src, generate.Config{Count: genCount, Now: now})
	enriched := enrich.Batch(src, events, trust.DefaultConfig(), now)

	params := query.Parse(url.Values{
		"agent":  {genAgent},
		"format": {genFormat},
	})
	filtered := query.Apply(enriched, params)

	out, err := json.MarshalIndent(format.ProjectAll(filtered, params.Format, params.Depth), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode batch: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(out))
	return nil
}
