package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHomeCmd(a *app) *cobra.Command {
	var contentType string

	cmd := &cobra.Command{
		Use:   "home",
		Short: "Show homepage content (public, no login needed)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext()
			defer cancel()

			contents, err := a.api.HomepageContent(ctx, contentType)
			if err != nil {
				return err
			}
			if len(contents) == 0 {
				infoText.Println("No content published yet.")
				return nil
			}

			for _, c := range contents {
				fmt.Printf("[%s] %s\n", c.ContentType, c.Title)
				if c.Content != "" {
					fmt.Printf("    %s\n", c.Content)
				}
				if c.LinkURL != "" {
					fmt.Printf("    -> %s\n", c.LinkURL)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&contentType, "type", "", "filter by content type: background, carousel, update, knowledge")
	return cmd
}
