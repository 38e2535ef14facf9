package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/jonwraymond/vizexec/catalog"
	"github.com/jonwraymond/vizexec/mcpserver"
	"github.com/jonwraymond/vizexec/remote"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the visualization tools over MCP on stdio",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := remote.New(cfg.RemoteConfig(logger))
		if err != nil {
			return err
		}
		cat, err := catalog.New(catalog.Config{Client: client, Logger: logger})
		if err != nil {
			return err
		}
		srv, err := mcpserver.New(mcpserver.Config{Catalog: cat, Logger: logger})
		if err != nil {
			return err
		}
		return srv.Run(cmd.Context(), &mcp.StdioTransport{})
	},
}
