package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bethropolis/tide-astyle/internal/app"
	"github.com/bethropolis/tide-astyle/internal/diffview"
	"github.com/bethropolis/tide-astyle/internal/filetype"
	"github.com/bethropolis/tide-astyle/internal/i18n"
)

type formatOptions struct {
	typeName  string
	toStdout  bool
	diff      bool
	clipboard bool
	context   int
}

func newFormatCmd() *cobra.Command {
	opts := &formatOptions{}
	cmd := &cobra.Command{
		Use:   "format [file]",
		Short: "Format a file, standard input or the clipboard",
		Long: `Format a document with the saved AStyle options.

A file is rewritten in place unless --stdout or --diff is given. Without a
file, standard input is formatted to standard output. The language mode is
derived from the file extension or from --type (C, C++, Java, C#).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd.Context(), cmd, opts, args)
		},
	}
	cmd.Flags().StringVarP(&opts.typeName, "type", "t", "", "Document type name (C, C++, Java, C#, ...)")
	cmd.Flags().BoolVar(&opts.toStdout, "stdout", false, "Print the result instead of rewriting the file")
	cmd.Flags().BoolVar(&opts.diff, "diff", false, "Show the changes instead of rewriting the file")
	cmd.Flags().BoolVar(&opts.clipboard, "clipboard", false, "Format the clipboard contents in place")
	cmd.Flags().IntVar(&opts.context, "context", 3, "Unchanged lines shown around each change with --diff")
	return cmd
}

func runFormat(ctx context.Context, cmd *cobra.Command, opts *formatOptions, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.clipboard && len(args) > 0 {
		return fmt.Errorf("--clipboard does not take a file argument")
	}

	inPlace := len(args) == 1 && !opts.toStdout && !opts.diff
	a, err := rt.newApp(inPlace)
	if err != nil {
		return err
	}
	defer a.Close()

	var res app.Result
	switch {
	case opts.clipboard:
		res, err = a.FormatClipboard(ctx, typeOrNone(opts.typeName))
	case len(args) == 1:
		res, err = a.FormatFile(ctx, args[0], opts.typeName)
	default:
		var input []byte
		input, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read standard input: %w", err)
		}
		res, err = a.FormatText(ctx, string(input), typeOrNone(opts.typeName))
		opts.toStdout = opts.toStdout || !opts.diff
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case opts.diff:
		name := res.Path
		if name == "" {
			name = "<input>"
		}
		rendered, _ := diffview.Render(filepath.ToSlash(name), res.Before, res.After, opts.context)
		fmt.Fprint(out, rendered)
	case opts.toStdout:
		fmt.Fprint(out, res.After)
	case res.Changed() && res.Path != "":
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", res.Path, a.Settings().Text(i18n.MsgFormatted))
	}
	return nil
}

func typeOrNone(typeName string) string {
	if typeName == "" {
		return filetype.NoneName
	}
	return typeName
}
