package cmd

import (
	"time"

	v1 "github.com/djcass44/lpmadison/pkg/api/v1"
	"github.com/djcass44/lpmadison/pkg/config"
	"github.com/djcass44/lpmadison/pkg/launchpad"
	"github.com/djcass44/lpmadison/pkg/publishing"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
)

const (
	flagSeries  = "series"
	flagArch    = "arch"
	flagPackage = "package"
	flagVersion = "version"
	flagDate    = "date"
	flagBefore  = "before"
	flagAfter   = "after"
	flagLineOut = "lineout"
)

func init() {
	command.Flags().StringP(flagSeries, "s", "", "search packages in this series")
	command.Flags().StringP(flagArch, "r", "", "limit results to this architecture")
	command.Flags().StringP(flagPackage, "p", "", "limit search to a specific package")
	command.Flags().StringP(flagVersion, "v", "", "limit to this specific version or submatch")
	command.Flags().StringP(flagDate, "d", "", "search packages published on <date>")
	command.Flags().StringP(flagBefore, "b", "", "search packages published before <date>")
	command.Flags().StringP(flagAfter, "a", "", "search packages published after <date>")
	command.Flags().BoolP(flagLineOut, "l", false, "produce line-oriented output instead of the default stanza-oriented output")

	_ = command.MarkFlagRequired(flagSeries)
}

func query(cmd *cobra.Command, _ []string) error {
	log := logr.FromContextOrDiscard(cmd.Context())

	series, _ := cmd.Flags().GetString(flagSeries)
	arch, _ := cmd.Flags().GetString(flagArch)
	pkg, _ := cmd.Flags().GetString(flagPackage)
	version, _ := cmd.Flags().GetString(flagVersion)
	date, _ := cmd.Flags().GetString(flagDate)
	before, _ := cmd.Flags().GetString(flagBefore)
	after, _ := cmd.Flags().GetString(flagAfter)
	lineOut, _ := cmd.Flags().GetBool(flagLineOut)

	// validate the filters before anything
	// touches the network
	criteria, err := publishing.ParseCriteria(publishing.Criteria{
		Series:  series,
		Arch:    arch,
		Package: pkg,
		Version: version,
		LineOut: lineOut,
	}, publishing.RawDates{
		Date:   date,
		After:  after,
		Before: before,
	})
	if err != nil {
		return err
	}

	cfg, err := readConfig(cmd)
	if err != nil {
		return err
	}
	root, err := config.ServiceRoot(cfg.Spec)
	if err != nil {
		return err
	}
	log.V(1).Info("using launchpad service", "root", root, "distribution", cfg.Spec.Distribution)

	archive, err := launchpad.NewArchive(cmd.Context(), launchpad.NewClient(root, nil), cfg.Spec.Distribution)
	if err != nil {
		return err
	}
	records, err := publishing.Fetch(cmd.Context(), archive, criteria)
	if err != nil {
		return err
	}
	_, err = publishing.NewPrinter(cmd.OutOrStdout(), criteria.LineOut).Print(cmd.Context(), records, criteria, time.Now())
	return err
}

// readConfig loads the configuration file, if there is one, and
// applies any overrides given on the command line.
func readConfig(cmd *cobra.Command) (v1.Config, error) {
	log := logr.FromContextOrDiscard(cmd.Context())

	cfg := config.Default()
	if path, _ := cmd.Flags().GetString(flagConfig); path != "" {
		log.V(1).Info("reading configuration file", "path", path)
		var err error
		cfg, err = config.Read(path)
		if err != nil {
			return v1.Config{}, err
		}
	}
	if v, _ := cmd.Flags().GetString(flagInstance); v != "" {
		cfg.Spec.Instance = v
	}
	if v, _ := cmd.Flags().GetString(flagAPIVersion); v != "" {
		cfg.Spec.ServiceVersion = v
	}
	if v, _ := cmd.Flags().GetString(flagDistribution); v != "" {
		cfg.Spec.Distribution = v
	}
	if err := config.Validate(cfg.Spec); err != nil {
		return v1.Config{}, err
	}
	return cfg, nil
}
