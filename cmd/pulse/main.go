package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"careerpulse/internal/advisor"
	"careerpulse/internal/config"
	"careerpulse/internal/gemini"
	"careerpulse/internal/logging"
	"careerpulse/internal/synth"
	"careerpulse/internal/types"
)

var (
	// Global flags
	apiKey     string
	configPath string
	timeout    time.Duration
	seed       int64
	verbose    bool
	rangeFlag  string

	logger *zap.Logger
	svc    *advisor.Service
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pulse",
	Short: "careerpulse - AI-backed career intelligence",
	Long: `careerpulse generates career-development data with Gemini: an AI-tool
directory, job listings, market reports, product strategies, and learning
roadmaps. Every read degrades gracefully: when the backend is unreachable
the result is synthesized locally with the same shape.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		logger, err = logging.New(cfg.Logging.Level, verbose)
		if err != nil {
			return err
		}

		if apiKey != "" {
			cfg.Gemini.APIKey = apiKey
		}
		clientCfg, err := cfg.ClientConfig()
		if err != nil {
			return err
		}
		if timeout > 0 {
			clientCfg.Timeout = timeout
		}

		client := gemini.New(clientCfg, gemini.WithLogger(logger.Named("gemini")))

		synthOpts := []synth.Option{}
		if seed != 0 {
			synthOpts = append(synthOpts, synth.WithSeed(seed))
		}

		svc = advisor.New(client,
			advisor.WithLogger(logger.Named("advisor")),
			advisor.WithSynthesizer(synth.New(synthOpts...)))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Fetch the trending AI-tool directory",
	Long: `Fetches the live AI-tool directory. Prints null when the backend is
unavailable, signaling callers to keep previously displayed data.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printJSON(svc.FetchTools(cmd.Context()))
	},
}

var jobsCmd = &cobra.Command{
	Use:   "jobs [query]",
	Short: "Fetch job listings for a role query",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printJSON(svc.FetchJobs(cmd.Context(), joinArgs(args)))
	},
}

var marketCmd = &cobra.Command{
	Use:   "market [query]",
	Short: "Generate a market-pulse report",
	Long: `Generates a market report, optionally pivoted to a query such as a tool
name. The --range flag controls the chart window: 3M, 6M, or 1Y.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printJSON(svc.MarketPulse(cmd.Context(), joinArgs(args), types.TimeRange(rangeFlag)))
	},
}

var strategyCmd = &cobra.Command{
	Use:   "strategy <product> <description>",
	Short: "Generate a product-strategy report",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printJSON(svc.ProductStrategy(cmd.Context(), args[0], joinArgs(args[1:])))
	},
}

var roadmapCmd = &cobra.Command{
	Use:   "roadmap <tech> [goal]",
	Short: "Generate a learning roadmap for a technology",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		goal := joinArgs(args[1:])
		if goal == "" {
			goal = "Reach senior-level proficiency."
		}
		return printJSON(svc.LearningRoadmap(cmd.Context(), args[0], goal))
	},
}

var skillCmd = &cobra.Command{
	Use:   "skill <name>",
	Short: "Generate a personalized skill roadmap",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printJSON(svc.SkillRoadmap(cmd.Context(), joinArgs(args)))
	},
}

var briefCmd = &cobra.Command{
	Use:   "brief [query]",
	Short: "Fetch market pulse, jobs, and tools in one shot",
	RunE: func(cmd *cobra.Command, args []string) error {
		query := joinArgs(args)

		var (
			pulse *types.MarketPulse
			jobs  []types.Job
			tools []types.AITool
		)

		g, ctx := errgroup.WithContext(cmd.Context())
		g.Go(func() error {
			pulse = svc.MarketPulse(ctx, query, types.TimeRange(rangeFlag))
			return nil
		})
		g.Go(func() error {
			jobs = svc.FetchJobs(ctx, query)
			return nil
		})
		g.Go(func() error {
			tools = svc.FetchTools(ctx)
			return nil
		})
		if err := g.Wait(); err != nil {
			return err
		}

		return printJSON(struct {
			Market *types.MarketPulse `json:"market"`
			Jobs   []types.Job        `json:"jobs"`
			Tools  []types.AITool     `json:"tools"`
		}{pulse, jobs, tools})
	},
}

func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Gemini API key (overrides config and GEMINI_API_KEY)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Request deadline for backend calls")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Seed for fallback randomness (0 = time-based)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	marketCmd.Flags().StringVar(&rangeFlag, "range", "6M", "Chart window: 3M, 6M, or 1Y")
	briefCmd.Flags().StringVar(&rangeFlag, "range", "6M", "Chart window: 3M, 6M, or 1Y")

	rootCmd.AddCommand(toolsCmd, jobsCmd, marketCmd, strategyCmd, roadmapCmd, skillCmd, briefCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
