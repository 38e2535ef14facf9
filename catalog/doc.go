// Package catalog publishes the visualization generator as discoverable tools.
//
// Tools are registered in a tooldiscovery index with BM25 search and
// documented in a tooldoc store, so agents can find them by query, read
// their documentation, and run them by canonical ID:
//
//	visualization:generate   submit code and return the classified artifact
//	visualization:classify   classify an artifact without any network call
//
// The catalog is the single source of tool definitions; the mcpserver package
// serves the same tools over the Model Context Protocol.
//
// # Usage
//
//	cat, err := catalog.New(catalog.Config{Client: client})
//	results, _ := cat.Search(ctx, "plot chart", 5)
//	out, err := cat.Run(ctx, results[0].ID, map[string]any{
//	    "language":    "python",
//	    "output_mode": "static",
//	    "code":        "import matplotlib.pyplot as plt\nplt.plot([1, 2])",
//	})
package catalog
