package app

import (
	"fmt"

	"github.com/andaru/sedml"
	"github.com/andaru/sedml/sederr"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type Fmt struct {
	cmd *cobra.Command

	mainopts *Options
	write    bool
}

func NewFmt(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt <file>... <options>",
		Short: "rewrite SED-ML documents in canonical form",
		Args:  cobra.MinimumNArgs(1),
	}
	c := &Fmt{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.BoolVarP(&c.write, "write", "w", false, "write the result back to the source file")
	return cmd
}

func (c *Fmt) Run(args []string) error {
	opts := []sedml.Option{sedml.WithIndent("", *c.mainopts.config.Indent)}
	for _, path := range args {
		d, err := sedml.ReadFile(path)
		if err != nil {
			return err
		}
		// a document which was not read to its end would lose content
		if fatal := d.Errors().AtLeast(sederr.SeverityFatal); len(fatal) > 0 {
			return errors.Wrap(fatal[0], path)
		}
		if c.write {
			if err := sedml.WriteFile(path, d, opts...); err != nil {
				return err
			}
			glog.V(1).Infof("formatted %s", path)
			continue
		}
		out, err := sedml.WriteString(d, opts...)
		if err != nil {
			return errors.Wrap(err, path)
		}
		fmt.Fprintln(c.cmd.OutOrStdout(), out)
	}
	return nil
}
