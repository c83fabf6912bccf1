package main

import (
	"github.com/spf13/cobra"
	"github.com/xfwduke/blueking-dbm/pkg/client"
)

func newOpenareaCommand(a *app) *cobra.Command {
	openarea := &cobra.Command{
		Use:   "openarea",
		Short: "Inspect openarea templates",
	}

	var params client.OpenareaListParams
	list := &cobra.Command{
		Use:   "list <biz-id>",
		Short: "List the openarea templates of a business",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bizID, err := parseID(args[0])
			if err != nil {
				return err
			}

			templates, err := a.client.ListOpenareaTemplates(cmd.Context(), bizID, params)
			if err != nil {
				return err
			}
			return a.print(templates)
		},
	}
	list.Flags().StringVar(&params.ConfigName, "name", "", "Only list templates with this name")
	list.Flags().StringVar(&params.ClusterType, "cluster-type", "", "Only list templates of this cluster type")
	list.Flags().IntVar(&params.Limit, "limit", 10, "Number of templates to list")
	list.Flags().IntVar(&params.Offset, "offset", 0, "Number of templates to skip")

	get := &cobra.Command{
		Use:   "get <biz-id> <template-id>",
		Short: "Print an openarea template",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bizID, err := parseID(args[0])
			if err != nil {
				return err
			}
			id, err := parseID(args[1])
			if err != nil {
				return err
			}

			template, err := a.client.GetOpenareaTemplate(cmd.Context(), bizID, id)
			if err != nil {
				return err
			}
			return a.print(template)
		},
	}

	openarea.AddCommand(list, get)
	return openarea
}
