package main

import (
	"io"

	"github.com/dhamidi/tutor/lesson"
	"github.com/spf13/cobra"
)

func newRebuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rebuild [file]",
		Short: "Parse a lesson and print the text reconstructed from its tree",
		Long: `Parse a lesson and print the text reconstructed from the syntax tree.

The output is byte-for-byte identical to the input for every lesson that
parses. Reads from stdin when no file is given.`,
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
			_, err = io.WriteString(cmd.OutOrStdout(), lesson.Reconstruct(doc))
			return err
		},
	}
}
