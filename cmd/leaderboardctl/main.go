// Package main implements command line client for majorleaguegithub grpc server.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/majorleaguegithub/internal/api/grpc"
	"github.com/m-zajac/majorleaguegithub/internal/app"
	"github.com/m-zajac/majorleaguegithub/internal/view"
	"github.com/spf13/cobra"
)

// leaderboardClient is implemented by grpc.Client.
type leaderboardClient interface {
	Contributors(ctx context.Context, filter app.Filter) ([]app.Contributor, error)
	Hiring(ctx context.Context) (*app.Hiring, error)
}

type options struct {
	server  string
	timeout time.Duration
	connect func(address string) (leaderboardClient, io.Closer, error)
}

func main() {
	if err := newRootCmd(dialServer).Execute(); err != nil {
		os.Exit(1)
	}
}

func dialServer(address string) (leaderboardClient, io.Closer, error) {
	conn, err := grpc.Dial(address)
	if err != nil {
		return nil, nil, err
	}
	return grpc.NewClient(conn), conn, nil
}

func newRootCmd(connect func(address string) (leaderboardClient, io.Closer, error)) *cobra.Command {
	opts := &options{connect: connect}

	root := &cobra.Command{
		Use:          "leaderboardctl",
		Short:        "Query Major League GitHub leaderboard server",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&opts.server, "server", "s", "localhost:9450", "grpc server address in the format of host:port")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "request timeout")

	root.AddCommand(newContributorsCmd(opts), newHiringCmd(opts))

	return root
}

func newContributorsCmd(opts *options) *cobra.Command {
	var (
		filter app.Filter
		table  bool
	)

	cmd := &cobra.Command{
		Use:   "contributors",
		Short: "List ranked contributors",
		Long: `List ranked contributors matching the filter.

Region, state and city filters are combined, every id may contain only
letters, digits, "_" and "-". Data that is not ready yet is reported as
an error, retry after a moment.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, closer, err := opts.connect(opts.server)
			if err != nil {
				return err
			}
			defer closer.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			contributors, err := client.Contributors(ctx, filter)
			if err != nil {
				return err
			}
			if table {
				return printContributorsTable(cmd.OutOrStdout(), contributors)
			}
			return printJSON(cmd.OutOrStdout(), contributors)
		},
	}
	cmd.Flags().StringVar(&filter.RegionID, "region", "", "region id")
	cmd.Flags().StringSliceVar(&filter.StateIDs, "state", nil, "state id, can be repeated")
	cmd.Flags().StringSliceVar(&filter.CityIDs, "city", nil, "city id, can be repeated")
	cmd.Flags().BoolVar(&table, "table", false, "print compact table instead of json")

	return cmd
}

func newHiringCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "hiring",
		Short: "Show hiring manager and job openings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, closer, err := opts.connect(opts.server)
			if err != nil {
				return err
			}
			defer closer.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			hiring, err := client.Hiring(ctx)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), hiring)
		},
	}
}

func printJSON(w io.Writer, v interface{}) error {
	b, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding response to json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func printContributorsTable(w io.Writer, contributors []app.Contributor) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tLOGIN\tSCORE\tCOMMITS\tJAVA REPOS\tSTARS\tFORKS\tLAST COMMIT")
	for i, c := range contributors {
		lastCommit := "-"
		if !c.LatestCommitDate.IsZero() {
			lastCommit = view.FormatDate(c.LatestCommitDate, time.UTC)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			i+1,
			c.Login,
			view.FormatNumber(c.Score),
			view.FormatNumber(float64(c.TotalCommits)),
			view.FormatNumber(float64(c.JavaRepos)),
			view.FormatNumber(float64(c.StarsReceived)),
			view.FormatNumber(float64(c.ForksReceived)),
			lastCommit,
		)
	}
	return tw.Flush()
}
