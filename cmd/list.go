package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"algotest/internal/config"
	"algotest/internal/discovery"
	"algotest/pkg/logging"
	"algotest/pkg/registry"
	pkgstrings "algotest/pkg/strings"
)

var (
	listConfigPath string
	listDataPath   string
	listNamespace  string
	listNameFilter string
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered suites without running them",
	Long: `The list command runs discovery only: it applies the configured filters
and gates against the simulated host and prints what a run would execute,
including suites that are kept but gated (their units would be skipped).`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listConfigPath, "config", "", "Path to the configuration file (default: ./"+config.ConfigFileName+")")
	listCmd.Flags().StringVar(&listDataPath, "data", "", "YAML bar data file the gates are evaluated against")
	listCmd.Flags().StringVar(&listNamespace, "namespace", "", "Only suites whose namespace starts with this prefix")
	listCmd.Flags().StringVar(&listNameFilter, "filter", "", "Only suites whose name contains this fragment")
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(listConfigPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataPath = listDataPath
	}
	if flags.Changed("namespace") {
		cfg.Filter.Namespace = listNamespace
	}
	if flags.Changed("filter") {
		cfg.Filter.Name = listNameFilter
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logging.InitSilent()

	feed, err := buildFeed(cfg, true)
	if err != nil {
		return err
	}

	plan := discovery.Discover(registry.Default, feed, discovery.Filter{
		Namespace: cfg.Filter.Namespace,
		Name:      cfg.Filter.Name,
	})
	out := cmd.OutOrStdout()
	if plan.Empty() {
		fmt.Fprintln(out, "⚠️  No tests found")
		return nil
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Suite", "Namespace", "Category", "Units", "Tags", "Gate"})
	for _, sp := range plan.Suites {
		gate := sp.GateReason
		if gate == "" {
			gate = "-"
		}
		tags := pkgstrings.TruncateMessage(sp.Suite.Tags, 40)
		tw.AppendRow(table.Row{sp.Suite.Name, sp.Suite.Namespace, sp.Suite.Category, len(sp.Units), tags, gate})
	}
	fmt.Fprintln(out, tw.Render())
	fmt.Fprintf(out, "🔍 %d units across %d suites\n", plan.TotalUnits, len(plan.Suites))
	return nil
}
