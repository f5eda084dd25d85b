package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/vrsandeep/freegames/internal/terminal"
	"github.com/vrsandeep/freegames/internal/view"
)

func newListCmd(load appLoader) *cobra.Command {
	var category string
	var columns int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the games in a category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := load()
			if err != nil {
				return err
			}
			if category == "" {
				category = app.Config().Catalog.DefaultCategory
			}
			v := view.New(app.Catalog(), terminal.NewRenderer(cmd.OutOrStdout(), columns), category)
			v.SelectCategory(cmd.Context(), category)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Category to list (default from config)")
	cmd.Flags().IntVar(&columns, "columns", 2, "Cards per row")
	return cmd
}

func newShowCmd(load appLoader) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show the full record for one game",
		Long: `show lists a category and then opens one game from it. If the game
cannot be fetched, the category grid is all that is shown.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid game id %q", args[0])
			}
			app, err := load()
			if err != nil {
				return err
			}
			if category == "" {
				category = app.Config().Catalog.DefaultCategory
			}
			v := view.New(app.Catalog(), terminal.NewRenderer(cmd.OutOrStdout(), 2), category)
			v.Initialize(cmd.Context())
			v.OpenGame(cmd.Context(), id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Category whose grid the game is opened from")
	return cmd
}

func newCategoriesCmd(load appLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Print the configured category tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := load()
			if err != nil {
				return err
			}
			for _, c := range app.Categories() {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}
