// Command corrigospell is a CLI and HTTP front end for the spell package.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	spell "github.com/corrigo/spell"
	"github.com/corrigo/spell/cmd/corrigospell/config"
	"github.com/corrigo/spell/cmd/corrigospell/serve"
	"github.com/corrigo/spell/cmd/corrigospell/store"
)

var (
	configPath string
	cfg        config.Config
	log        *zap.Logger
)

func main() {
	root := &cobra.Command{
		Use:   "corrigospell",
		Short: "Approximate-string lookup and spelling correction",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			log, err = zap.NewProduction()
			if err != nil {
				return err
			}
			if configPath != "" {
				cfg, err = config.Load(configPath)
				return err
			}
			cfg = config.Default()
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")

	root.AddCommand(newLookupCmd())
	root.AddCommand(newCompoundCmd())
	root.AddCommand(newSegmentCmd())
	root.AddCommand(newBuildCmd())
	root.AddCommand(newServeCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadSpeller() (*spell.Spell, error) {
	if cfg.SnapshotPath != "" {
		if _, err := os.Stat(cfg.SnapshotPath); err == nil {
			return spell.Load(cfg.SnapshotPath)
		}
	}

	s, err := spell.New(
		spell.WithMaxDictionaryEditDistance(cfg.MaxEditDistance),
		spell.WithPrefixLength(cfg.PrefixLength),
		spell.WithCountThreshold(cfg.CountThreshold),
		spell.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}

	if cfg.DictionaryPath != "" {
		if err := s.LoadDictionary(cfg.DictionaryPath, 0, 1, " "); err != nil {
			return nil, err
		}
	}
	if cfg.BigramPath != "" {
		if err := s.LoadBigramDictionary(cfg.BigramPath, 0, 2, " "); err != nil {
			return nil, err
		}
	}
	if cfg.Postgres.DSN != "" {
		pg, err := store.Open(cfg.Postgres.DSN)
		if err != nil {
			return nil, err
		}
		defer pg.Close()
		if _, err := pg.LoadInto(s.Index(), cfg.Postgres.Query); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func newLookupCmd() *cobra.Command {
	var maxEditDistance int
	cmd := &cobra.Command{
		Use:   "lookup [term]",
		Short: "Suggest corrections for a single term",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSpeller()
			if err != nil {
				return err
			}
			opts := []spell.LookupOption{}
			if maxEditDistance >= 0 {
				opts = append(opts, spell.WithMaxEditDistance(maxEditDistance))
			}
			suggestions, err := s.Lookup(args[0], spell.Closest, opts...)
			if err != nil {
				return err
			}
			for _, sug := range suggestions {
				fmt.Printf("%s\t%d\t%d\n", sug.Term, sug.Distance, sug.Count)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&maxEditDistance, "max-edit-distance", -1, "override the configured max edit distance")
	return cmd
}

func newCompoundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compound [phrase]",
		Short: "Correct a multi-word phrase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSpeller()
			if err != nil {
				return err
			}
			result, err := s.LookupCompound(args[0])
			if err != nil {
				return err
			}
			fmt.Println(result.Term)
			return nil
		},
	}
	return cmd
}

func newSegmentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "segment [phrase]",
		Short: "Insert spaces into a run-together phrase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSpeller()
			if err != nil {
				return err
			}
			result, err := s.WordSegmentation(args[0])
			if err != nil {
				return err
			}
			fmt.Println(result.CorrectedPhrase)
			return nil
		},
	}
	return cmd
}

func newBuildCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a dictionary snapshot from the configured sources and write it to disk",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSpeller()
			if err != nil {
				return err
			}
			if outPath == "" {
				outPath = cfg.SnapshotPath
			}
			if outPath == "" {
				return fmt.Errorf("no output path given: pass --out or set snapshot_path in the config")
			}
			return s.Save(outPath)
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "", "path to write the snapshot to")
	return cmd
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve lookup, compound, and segment over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSpeller()
			if err != nil {
				return err
			}
			router := serve.NewRouter(s)
			log.Info("listening", zap.String("addr", cfg.ListenAddr))
			return http.ListenAndServe(cfg.ListenAddr, router)
		},
	}
	return cmd
}
