package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonwraymond/vizexec/payload"
	"github.com/jonwraymond/vizexec/remote"
	"github.com/jonwraymond/vizexec/render"
	"github.com/jonwraymond/vizexec/session"
)

var (
	genLanguage string
	genMode     string
	genOut      string
)

var generateCmd = &cobra.Command{
	Use:   "generate [file]",
	Short: "Submit code and render the returned visualization",
	Long: `Reads code from the given file (or stdin), prepends the output mode
directive, submits it, and reports the artifact kind. With --out the
visualization is written as a standalone HTML page.

The language defaults to the file extension (.py or .R) and then to
VIZGEN_LANGUAGE or python.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&genLanguage, "language", "l", "", "Language: python or R")
	generateCmd.Flags().StringVarP(&genMode, "mode", "m", "", "Output mode: static, interactive, or 3d")
	generateCmd.Flags().StringVarP(&genOut, "out", "o", "", "Write an HTML viewer page to this path")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	code, path, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	st := session.NewState()
	st.Code = code

	st.Language, err = resolveLanguage(genLanguage, path, cfg.Language)
	if err != nil {
		return err
	}
	mode := genMode
	if mode == "" {
		mode = cfg.OutputMode
	}
	if mode != "" {
		if st.OutputMode, err = payload.ParseOutputMode(mode); err != nil {
			return err
		}
	}

	client, err := remote.New(cfg.RemoteConfig(logger))
	if err != nil {
		return err
	}
	sess, err := session.New(session.Config{Client: client, Logger: logger})
	if err != nil {
		return err
	}

	logger.Debug("submitting", "endpoint", client.Endpoint(), "language", string(st.Language), "output_mode", string(st.OutputMode))
	out, err := sess.Submit(cmd.Context(), st)
	if err != nil {
		return err
	}
	if out.Error != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), out.Error)
		return errReported
	}

	// A submission without an error always carries an artifact.
	inst, _ := out.Render()
	fmt.Fprintln(cmd.OutOrStdout(), inst.Kind)

	if genOut == "" {
		return nil
	}
	f, err := os.Create(genOut)
	if err != nil {
		return fmt.Errorf("create %s: %w", genOut, err)
	}
	if err := render.WritePage(f, inst); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", genOut, err)
	}
	logger.Info("visualization written", "path", genOut, "kind", inst.Kind.String())
	return nil
}

// resolveLanguage picks the language from the flag, the file extension, or
// the environment, in that order.
func resolveLanguage(flag, path, env string) (payload.Language, error) {
	if flag != "" {
		return payload.ParseLanguage(flag)
	}
	if path != "" {
		if lang, ok := payload.LanguageForFile(path); ok {
			return lang, nil
		}
	}
	if env != "" {
		return payload.ParseLanguage(env)
	}
	return payload.DefaultLanguage, nil
}

// readInput returns the contents of args[0], or stdin when no file is given.
func readInput(cmd *cobra.Command, args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), "", nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(b), args[0], nil
}
