package main

import (
	"github.com/spf13/cobra"
	"github.com/xfwduke/blueking-dbm/pkg/toolbox"
)

func newMenusCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "menus [db-type]",
		Short: "List the db types having toolbox menus, or print the menus of a db type",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := toolbox.Load()
			if err != nil {
				return err
			}

			if len(args) == 0 {
				return a.print(catalog.DBTypes())
			}

			menus, err := catalog.Menus(args[0])
			if err != nil {
				return err
			}
			return a.print(menus)
		},
	}
}
