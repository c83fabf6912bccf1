package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/xfwduke/blueking-dbm/pkg/clone"
	"github.com/xfwduke/blueking-dbm/pkg/model"
)

func newCloneCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clone <ticket-id>",
		Short: "Fetch a ticket and print the seed of a new ticket of the same type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			ticket, err := a.client.GetTicket(ctx, id)
			if err != nil {
				return err
			}
			a.logger.DebugContext(model.NewContextWithTicketID(ctx, id), "Fetched ticket", "ticketType", ticket.Type)

			return a.resolve(cmd, ticket)
		},
	}
}

func newCloneFileCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clone-file <path>",
		Short: "Print the seed of a ticket read from a JSON file, without contacting the API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read ticket: %v", err)
			}

			var ticket model.RawTicket
			if err := json.Unmarshal(data, &ticket); err != nil {
				return fmt.Errorf("failed to parse ticket %q: %v", args[0], err)
			}

			return a.resolve(cmd, ticket)
		},
	}
}

func (a *app) resolve(cmd *cobra.Command, ticket model.RawTicket) error {
	ctx := model.NewContextWithTicketID(cmd.Context(), ticket.ID)
	seed, err := clone.Resolve(ctx, ticket).Await(ctx)
	if err != nil {
		return err
	}
	a.logger.DebugContext(ctx, "Cloned ticket", "rows", len(seed))

	return a.print(clone.Result{TicketID: ticket.ID, TicketType: ticket.Type, Seed: seed})
}

func parseID(arg string) (uint, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %v", arg, err)
	}
	return uint(id), nil
}
