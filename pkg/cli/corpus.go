package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/getmockd/cssrand/pkg/config"
)

var (
	corpusOut     string
	corpusKind    string
	corpusCount   int
	corpusSeed    uint64
	corpusProfile string
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Write generated fragments as a fuzz seed corpus",
	Long: `Write generated fragments to a directory, one file per fragment,
for use as a seed corpus in a fuzz harness. File names are random UUIDs so
corpora from repeated runs can be merged without collisions.

A manifest.json in the corpus directory maps each file name to the
fragment's kind, text, and decoded value.

Example:
  cssrand corpus --out seeds --kind color --count 100 --seed 42`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if corpusOut == "" {
			return fmt.Errorf("--out is required")
		}

		p := config.Default()
		if corpusProfile != "" {
			loaded, err := config.Load(corpusProfile)
			if err != nil {
				return err
			}
			p = loaded
		}
		if cmd.Flags().Changed("kind") {
			p.Kind = corpusKind
		}
		if cmd.Flags().Changed("count") {
			p.Count = corpusCount
		}
		if cmd.Flags().Changed("seed") {
			seed := corpusSeed
			p.Seed = &seed
		}
		if err := p.Validate(); err != nil {
			return err
		}

		samples := generateSamples(sourceFor(p), p)
		if err := writeCorpus(corpusOut, samples, logger); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d fragments to %s\n", len(samples), corpusOut)
		return nil
	},
}

// writeCorpus writes each sample to its own UUID-named file under dir and
// a manifest.json mapping file names back to samples.
func writeCorpus(dir string, samples []sample, log *slog.Logger) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create corpus directory: %w", err)
	}

	manifest := make(map[string]sample, len(samples))
	for _, s := range samples {
		name := uuid.New().String() + ".css"
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(s.Text), 0o644); err != nil {
			return fmt.Errorf("failed to write corpus file: %w", err)
		}
		manifest[name] = s
		log.Debug("wrote corpus file", "path", path, "kind", s.Kind)
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "manifest.json"), data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	log.Info("corpus written", "dir", dir, "fragments", len(samples))
	return nil
}

func init() {
	corpusCmd.Flags().StringVar(&corpusOut, "out", "", "Corpus output directory (required)")
	corpusCmd.Flags().StringVar(&corpusKind, "kind", config.KindAll, "Value kind: integer, number, length, opacity, color, all")
	corpusCmd.Flags().IntVar(&corpusCount, "count", 10, "Number of fragments to generate")
	corpusCmd.Flags().Uint64Var(&corpusSeed, "seed", 0, "Seed for deterministic output")
	corpusCmd.Flags().StringVar(&corpusProfile, "profile", "", "Run profile file (YAML or JSON)")
	rootCmd.AddCommand(corpusCmd)
}
