package catalog

import (
	"context"
	"fmt"

	"github.com/jonwraymond/tooldiscovery/tooldoc"
	"github.com/jonwraymond/toolfoundation/model"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jonwraymond/vizexec/payload"
	"github.com/jonwraymond/vizexec/render"
	"github.com/jonwraymond/vizexec/session"
)

// Tool names within the namespace.
const (
	ToolGenerate = "generate"
	ToolClassify = "classify"
)

// GenerateResult is the output of the generate tool.
type GenerateResult struct {
	// Kind is the classified artifact kind; empty when the submission failed.
	Kind string `json:"kind,omitempty"`

	// Visualization is the returned artifact.
	Visualization string `json:"visualization,omitempty"`

	// Error is the user-visible failure message.
	Error string `json:"error,omitempty"`
}

// ClassifyResult is the output of the classify tool.
type ClassifyResult struct {
	Kind    string `json:"kind"`
	Element string `json:"element,omitempty"`
}

type definition struct {
	tool    model.Tool
	doc     tooldoc.DocEntry
	handler Handler
}

func (c *Catalog) definitions() []definition {
	languages := make([]any, 0, 2)
	for _, l := range payload.Languages() {
		languages = append(languages, string(l))
	}
	modes := make([]any, 0, 3)
	for _, m := range payload.OutputModes() {
		modes = append(modes, string(m))
	}

	return []definition{
		{
			tool: model.Tool{
				Tool: mcp.Tool{
					Name:        ToolGenerate,
					Title:       "Generate visualization",
					Description: "Run Python or R plotting code on the remote execution service and return the visualization artifact (chart image or interactive HTML plot).",
					InputSchema: map[string]any{
						"type": "object",
						"properties": map[string]any{
							"language": map[string]any{
								"type":        "string",
								"enum":        languages,
								"description": "Language the code is written in. Default: python.",
							},
							"output_mode": map[string]any{
								"type":        "string",
								"enum":        modes,
								"description": "static renders a PNG image; interactive and 3d render an HTML plot. Default: interactive.",
							},
							"code": map[string]any{
								"type":        "string",
								"description": "Plotting code, submitted verbatim.",
							},
						},
						"required": []any{"code"},
					},
				},
				Tags: []string{"visualization", "chart", "plot", "python", "R", "execute"},
			},
			doc: tooldoc.DocEntry{
				Summary: "Submits plotting code and returns the rendered chart artifact.",
				Notes: "The output mode is prepended to the code as a directive line " +
					"(output_mode = '<mode>'). Interactive output expects a Plotly figure named fig. " +
					"The result kind is one of html_data_uri, html_document, image_data_uri, or unsupported.",
			},
			handler: c.generate,
		},
		{
			tool: model.Tool{
				Tool: mcp.Tool{
					Name:        ToolClassify,
					Title:       "Classify visualization artifact",
					Description: "Classify a visualization artifact string as an HTML data URI, HTML document, image data URI, or unsupported format.",
					InputSchema: map[string]any{
						"type": "object",
						"properties": map[string]any{
							"artifact": map[string]any{
								"type":        "string",
								"description": "Artifact returned by the execution service.",
							},
						},
						"required": []any{"artifact"},
					},
					Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
				},
				Tags: []string{"visualization", "classify", "render"},
			},
			doc: tooldoc.DocEntry{
				Summary: "Classifies an artifact string by prefix without contacting the backend.",
				Notes:   "Rules are evaluated in order and the first match wins: data:text/html, then <html or <!DOCTYPE, then data:image.",
			},
			handler: classify,
		},
	}
}

func (c *Catalog) generate(ctx context.Context, args map[string]any) (any, error) {
	st := session.NewState()

	if v, ok, err := stringArg(args, "language"); err != nil {
		return nil, err
	} else if ok {
		lang, err := payload.ParseLanguage(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidArgs, err)
		}
		st.Language = lang
	}
	if v, ok, err := stringArg(args, "output_mode"); err != nil {
		return nil, err
	} else if ok {
		mode, err := payload.ParseOutputMode(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidArgs, err)
		}
		st.OutputMode = mode
	}
	code, ok, err := stringArg(args, "code")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: code is required", ErrInvalidArgs)
	}
	st.Code = code

	sess, err := session.New(session.Config{Client: c.client, Logger: c.logger})
	if err != nil {
		return nil, err
	}
	out, err := sess.Submit(ctx, st)
	if err != nil {
		return nil, err
	}

	result := GenerateResult{
		Visualization: out.Visualization,
		Error:         out.Error,
	}
	if inst, ok := out.Render(); ok {
		result.Kind = inst.Kind.String()
	}
	return result, nil
}

func classify(_ context.Context, args map[string]any) (any, error) {
	artifact, ok, err := stringArg(args, "artifact")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: artifact is required", ErrInvalidArgs)
	}
	inst, ok := render.Render(artifact)
	if !ok {
		return nil, fmt.Errorf("%w: artifact is empty", ErrInvalidArgs)
	}
	return ClassifyResult{Kind: inst.Kind.String(), Element: string(inst.Element)}, nil
}

// stringArg returns args[key] as a string. It reports false if the key is
// absent or null, and ErrInvalidArgs if the value is not a string.
func stringArg(args map[string]any, key string) (string, bool, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", false, fmt.Errorf("%w: %s must be a string, got %T", ErrInvalidArgs, key, v)
	}
	return s, true, nil
}
