package app

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/andaru/sedml"
	"github.com/andaru/sedml/sederr"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type Check struct {
	cmd *cobra.Command

	mainopts *Options
}

// Report is the outcome of checking one file
type Report struct {
	File     string          `json:"file" yaml:"file"`
	Level    int             `json:"level" yaml:"level"`
	Version  int             `json:"version" yaml:"version"`
	Problems []*sederr.Error `json:"problems" yaml:"problems"`
}

func NewCheck(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "report the problems found in SED-ML documents",
		Args:  cobra.MinimumNArgs(1),
	}
	c := &Check{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	return cmd
}

func (c *Check) Run(args []string) error {
	cfg := c.mainopts.config
	failOn, err := cfg.Severity()
	if err != nil {
		return err
	}

	var reports []Report
	failed := 0
	for _, path := range args {
		d, err := sedml.ReadFile(path)
		if err != nil {
			return err
		}
		log := d.Errors()
		failed += len(log.AtLeast(failOn))
		reports = append(reports, Report{
			File:     path,
			Level:    d.Level(),
			Version:  d.Version(),
			Problems: append([]*sederr.Error{}, log.Errors()...),
		})
	}

	if err := writeReports(c.cmd.OutOrStdout(), *cfg.Format, reports); err != nil {
		return err
	}
	if failed > 0 {
		return errors.Errorf("%d problem(s) at or above severity %s", failed, failOn)
	}
	return nil
}

func writeReports(w io.Writer, format string, reports []Report) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.WithStack(enc.Encode(reports))
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return errors.WithStack(err)
		}
		return errors.WithStack(enc.Close())
	}
	for _, r := range reports {
		if len(r.Problems) == 0 {
			fmt.Fprintf(w, "%s: ok\n", r.File)
			continue
		}
		for _, p := range r.Problems {
			fmt.Fprintf(w, "%s: %s\n", r.File, p)
		}
	}
	return nil
}
