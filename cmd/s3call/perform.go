package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/greenvulcano/gvesb-s3"
	"github.com/greenvulcano/gvesb-s3/call/s3"
	"github.com/greenvulcano/gvesb-s3/plugin"
)

type performFlags struct {
	props       []string
	payloadFile string
	output      string
	service     string
	system      string
	timeout     time.Duration
}

func (c *cli) newPerformCmd() *cobra.Command {
	var f performFlags

	cmd := &cobra.Command{
		Use:   "perform <operation>",
		Short: "Perform a configured operation once",
		Long: `Perform builds a message from the given properties and payload, performs the named
operation on it and writes the resulting payload to stdout or --output.

Examples:
  s3call perform invoices-upload -p TENANT=acme -p S3_FILE_NAME=2024/inv-001.pdf -f inv-001.pdf
  s3call perform invoices-list -p S3_PREFIX=2024/
  s3call perform invoices-get -p S3_FILE_NAME=2024/inv-001.pdf -o inv-001.pdf
  cat report.csv | s3call perform reports-upload -p S3_FILE_NAME=report.csv -f -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPerform(cmd, args[0], f)
		},
	}

	bindPerformFlags(cmd.Flags(), &f)
	return cmd
}

func bindPerformFlags(fl *pflag.FlagSet, f *performFlags) {
	fl.StringArrayVarP(&f.props, "prop", "p", nil, "message property as KEY=VALUE, repeatable")
	fl.StringVarP(&f.payloadFile, "payload-file", "f", "", "file whose bytes become the payload, - for stdin")
	fl.StringVarP(&f.output, "output", "o", "", "write the resulting payload to this file instead of stdout")
	fl.StringVar(&f.service, "service", "S3CALL", "message service name")
	fl.StringVar(&f.system, "system", "CLI", "message system name")
	fl.DurationVar(&f.timeout, "timeout", 0, "abort the call after this long, 0 for no limit")
}

func (c *cli) runPerform(cmd *cobra.Command, name string, f performFlags) error {
	def, err := c.cfg.Operation(name)
	if err != nil {
		return err
	}
	props, err := parseProps(f.props)
	if err != nil {
		return err
	}

	msg := gvesb.NewMessage(f.service, f.system)
	for k, v := range props {
		msg.SetProperty(k, v)
	}
	if f.payloadFile != "" {
		if msg.Payload, err = readPayload(cmd.InOrStdin(), f.payloadFile); err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	activator := plugin.NewActivator(c.logger, s3.WithLogger(c.logger))
	if err := activator.Start(ctx); err != nil {
		return err
	}
	defer func() { _ = activator.Stop(ctx) }()

	op, err := def.Build()
	if err != nil {
		return err
	}
	defer op.Destroy()

	out, err := op.Perform(ctx, msg)
	if err != nil {
		status(cmd.ErrOrStderr(), false, "%s (tid %s)", name, msg.ID)
		return err
	}
	op.CleanUp()

	if err := c.writeResult(cmd.OutOrStdout(), f.output, out.Payload); err != nil {
		return err
	}
	status(cmd.ErrOrStderr(), true, "%s (tid %s)", name, msg.ID)
	return nil
}

func (c *cli) writeResult(stdout io.Writer, output string, payload any) error {
	data := payloadBytes(payload)
	if output == "" {
		if _, err := stdout.Write(data); err != nil {
			return err
		}
		if len(data) > 0 && data[len(data)-1] != '\n' {
			_, _ = io.WriteString(stdout, "\n")
		}
		return nil
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	c.logger.Debug().Str("file", output).Int("size", len(data)).Msg("Payload written")
	return nil
}

func parseProps(kvs []string) (map[string]string, error) {
	props := make(map[string]string, len(kvs))
	for _, kv := range kvs {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return nil, fmt.Errorf("property %q is not KEY=VALUE", kv)
		}
		props[strings.TrimSpace(k)] = v
	}
	return props, nil
}

func readPayload(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read payload from stdin: %w", err)
		}
		return b, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	return b, nil
}

func payloadBytes(payload any) []byte {
	switch p := payload.(type) {
	case nil:
		return nil
	case []byte:
		return p
	case string:
		return []byte(p)
	}
	return []byte(fmt.Sprint(payload))
}
