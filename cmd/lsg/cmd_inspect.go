package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lsgraph/core"
	"github.com/katalvlaran/lsgraph/format"
)

func newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats G",
		Short: "Print node, edge and layout statistics of a graph file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := openGraph(cmd.Context(), args[0], false)
			if err != nil {
				return err
			}
			defer g.Close()

			h := g.Header()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "nodes\t%s\n", humanize.Comma(int64(g.NumNodes())))
			fmt.Fprintf(tw, "edges\t%s\n", humanize.Comma(int64(g.NumEdges())))
			fmt.Fprintf(tw, "size\t%s\n", humanize.IBytes(uint64(g.Size())))
			fmt.Fprintf(tw, "words per entry\t%d\n", h.Width())
			fmt.Fprintf(tw, "values\t%t\n", g.HasValues())
			fmt.Fprintf(tw, "incoming\t%t\n", h.Flags.Has(format.FlagBoth))
			fmt.Fprintf(tw, "labels\t%t\n", g.HasLabels())
			fmt.Fprintf(tw, "transposed\t%t\n", g.Transposed())
			if n := g.NumNodes(); n > 0 {
				fmt.Fprintf(tw, "mean degree\t%s\n", humanize.FtoaWithDigits(float64(g.NumEdges())/float64(n), 3))
			}
			return tw.Flush()
		},
	}
}

func newDegreesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "degrees G NODE...",
		Short: "Print the in- and out-degree of nodes given by label or id",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := openGraph(cmd.Context(), args[0], false)
			if err != nil {
				return err
			}
			defer g.Close()

			w := cmd.OutOrStdout()
			for _, arg := range args[1:] {
				n, err := resolveNode(g, arg)
				if err != nil {
					return err
				}
				out, err := core.OutDegree(g, n)
				if err != nil {
					return err
				}
				in, err := core.InDegree(g, n)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%d\t%d\n", nodeName(g, n), in, out)
			}
			return nil
		},
	}
}

func newDumpCommand() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "dump G",
		Short: "Write a graph file back as a text edge list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := openGraph(cmd.Context(), args[0], false)
			if err != nil {
				return err
			}
			defer g.Close()

			return writeText(cmd.OutOrStdout(), out, func(w io.Writer) error {
				return core.WriteEdgeList(w, g)
			})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout, .zst to compress)")

	return cmd
}
