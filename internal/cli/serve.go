package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/framecode/pkg/host"
	"github.com/matzehuels/framecode/pkg/server"
)

// serveCommand creates the serve command that exposes the pipeline over
// HTTP and a websocket event stream.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		flags   optionFlags
		addr    string
		payload string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the conversion API for design-tool plugins",
		Long: `Serve the conversion API for design-tool plugins.

Endpoints:
  GET  /healthz      liveness probe
  POST /v1/convert   convert a document, returning markup and stylesheet
  GET  /v1/events    websocket: send documents as selection events,
                     receive artifacts, selection or error messages

A newer event on a websocket cancels the build for an older one, and
results of superseded events are never sent. The server stops gracefully
on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			opts, err := flags.options(cmd, cfg)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}
			if payload == "" {
				payload = cfg.Payload
			}
			opts.Logger = c.Logger

			srv, err := server.New(c.newRunner(), server.Config{
				Addr:    addr,
				Options: opts,
				Payload: host.Payload(payload),
				Logger:  c.Logger,
			})
			if err != nil {
				return err
			}

			printInfo("Serving %s + %s", opts.Markup, opts.Stylesheet)
			printKeyValue("convert", StyleLink.Render(fmt.Sprintf("http://%s/v1/convert", srv.Addr())))
			printKeyValue("events", StyleLink.Render(fmt.Sprintf("ws://%s/v1/events", srv.Addr())))
			printNextStep("Try", fmt.Sprintf("curl --data-binary @design.json http://%s/v1/convert", srv.Addr()))

			return srv.ListenAndServe(cmd.Context())
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: "+server.DefaultAddr+")")
	cmd.Flags().StringVar(&payload, "payload", "", "event payload: artifacts (default), selection")

	return cmd
}
