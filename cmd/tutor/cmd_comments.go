package main

import (
	"fmt"

	"github.com/dhamidi/tutor/lesson"
	"github.com/spf13/cobra"
)

func newCommentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "comments [file]",
		Short: "List the comments of a lesson with their positions",
		Args:  cobra.MaximumNArgs(1),
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
			for _, c := range lesson.Comments(doc) {
				pos := c.Content().Position()
				pos.File = filename
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", pos, c.Text())
			}
			return nil
		},
	}
}
