package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/greenvulcano/gvesb-s3/call/s3"
	"github.com/greenvulcano/gvesb-s3/operation"
	"github.com/greenvulcano/gvesb-s3/plugin"
)

func (c *cli) newOperationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "operations",
		Short: "List configured operations and registered operation types",
		Args:  cobra.NoArgs,
		RunE:  c.runOperations,
	}
}

func (c *cli) runOperations(cmd *cobra.Command, _ []string) error {
	activator := plugin.NewActivator(c.logger, s3.WithLogger(c.logger))
	if err := activator.Start(cmd.Context()); err != nil {
		return err
	}
	defer func() { _ = activator.Stop(cmd.Context()) }()

	out := cmd.OutOrStdout()
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "NAME\tTYPE\tACTION\tREGISTERED")
	for _, d := range c.cfg.Operations {
		registered := operation.Lookup(d.Type) != nil
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%t\n", d.Name, d.Type, d.Attributes[s3.AttrAction], registered)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(out, "\nregistered types: %s\n", strings.Join(operation.RegisteredSuppliers(), ", "))
	return err
}
