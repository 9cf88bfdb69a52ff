package app

import (
	"flag"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Options are the settings shared by all sub-commands, resolved from the
// config files and the command line before a sub-command runs.
type Options struct {
	configFile string
	indent     string
	failOn     string
	format     string

	config *Config
}

// New returns the sedml root command
func New() *cobra.Command {
	opts := &Options{}

	maincmd := &cobra.Command{
		Use:   "sedml <options> <cmd> <args>",
		Short: "check and format SED-ML documents",
		Long: `
This command reads SED-ML simulation experiment descriptions, reports the
problems found in them and writes them back in canonical form.
`,
		SilenceUsage:     true,
		TraverseChildren: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// glog insists on a parsed flag set
			if !flag.Parsed() {
				_ = flag.CommandLine.Parse(nil)
			}
			return opts.resolve(cmd.Flags())
		},
	}

	flags := maincmd.PersistentFlags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "config file")
	flags.StringVar(&opts.indent, "indent", defaultIndent, "indentation of written documents")
	flags.StringVar(&opts.failOn, "fail-on", defaultFailOn, "lowest problem severity failing a check")
	flags.StringVarP(&opts.format, "output", "o", defaultFormat, "output format (text, json or yaml)")
	flags.AddGoFlagSet(flag.CommandLine)

	maincmd.AddCommand(NewCheck(opts))
	maincmd.AddCommand(NewFmt(opts))
	return maincmd
}

// resolve layers the command line over the config files. Flags given
// explicitly win over any file.
func (o *Options) resolve(flags *pflag.FlagSet) error {
	cfg, err := GetConfig(o.configFile)
	if err != nil {
		return err
	}
	if f := flags.Lookup("indent"); f != nil && f.Changed {
		cfg.Indent = &o.indent
	}
	if f := flags.Lookup("fail-on"); f != nil && f.Changed {
		cfg.FailOn = &o.failOn
	}
	if f := flags.Lookup("output"); f != nil && f.Changed {
		cfg.Format = &o.format
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	glog.V(1).Infof("config: indent=%q failOn=%s format=%s", *cfg.Indent, *cfg.FailOn, *cfg.Format)
	o.config = cfg
	return nil
}
