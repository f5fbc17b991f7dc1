package main

import (
	"fmt"

	"github.com/dhamidi/tutor/format"
	"github.com/dhamidi/tutor/lesson"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var includeComments bool
	var includePositions bool

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a lesson and dump its syntax tree",
		Long: `Parse a lesson document and dump the syntax tree.

Reads from stdin when no file is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var filename string
			if len(args) > 0 {
				filename = args[0]
			}
			text, err := readLesson(filename, cmd.InOrStdin())
			if err != nil {
				return err
			}

			doc, err := lesson.Parse(text, lesson.WithFile(filename))
			if err != nil {
				return err
			}

			var opts []format.Option
			if includeComments {
				opts = append(opts, format.WithComments())
			}
			if includePositions {
				opts = append(opts, format.WithPositions())
			}

			var encoder format.Encoder
			switch outputFormat {
			case "json":
				encoder = format.NewJSONEncoder(cmd.OutOrStdout(), opts...)
			case "tree":
				encoder = format.NewTreeEncoder(cmd.OutOrStdout(), opts...)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if err := encoder.Encode(doc); err != nil {
				return fmt.Errorf("encode %s: %w", outputFormat, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format (tree, json)")
	cmd.Flags().BoolVar(&includeComments, "comments", false, "include comments recovered from skipped text")
	cmd.Flags().BoolVar(&includePositions, "positions", false, "include line:column ranges")

	return cmd
}
