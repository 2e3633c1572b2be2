// Command check_events prints recent outbox events straight from Spanner.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/discount-impact-service/internal/app/simulation/contracts"
	"github.com/light-bringer/discount-impact-service/internal/app/simulation/queries/list_events"
	"github.com/light-bringer/discount-impact-service/internal/app/simulation/repo"
	"github.com/light-bringer/discount-impact-service/internal/config"
)

func main() {
	var req list_events.Request
	flag.StringVar(&req.Status, "status", "", "filter by status")
	flag.StringVar(&req.AggregateID, "simulation", "", "filter by simulation id")
	flag.IntVar(&req.Limit, "limit", 10, "maximum events to show")
	flag.Parse()

	if err := run(&req); err != nil {
		fmt.Fprintf(os.Stderr, "check_events: %v\n", err)
		os.Exit(1)
	}
}

func run(req *list_events.Request) error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx := context.Background()
	client, err := spanner.NewClient(ctx, cfg.SpannerDB)
	if err != nil {
		return fmt.Errorf("failed to create Spanner client: %w", err)
	}
	defer client.Close()

	events, err := list_events.NewQuery(repo.NewEventsReadModel(client)).Execute(ctx, req)
	if err != nil {
		return err
	}

	printEvents(os.Stdout, events)
	return nil
}

func printEvents(w io.Writer, events []*contracts.EventDTO) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "EVENT ID\tTYPE\tSIMULATION\tSTATUS\tCREATED")
	for _, e := range events {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			e.EventID, e.EventType, e.AggregateID, e.Status, e.CreatedAt.Format(time.RFC3339))
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "%d event(s)\n", len(events))
}
