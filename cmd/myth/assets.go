package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newAssetsCmd() *cobra.Command {
	var showFiles bool

	cmd := &cobra.Command{
		Use:   "assets",
		Short: "Show the local image registry",
		Long:  "Lists the image buckets found under the assets directory and how many images each holds.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			return withDeps(func(d *Deps) error {
				buckets := d.Assets.Buckets()
				if len(buckets) == 0 {
					fmt.Fprintf(out, "No images found in %s.\n", d.Config.Assets.Dir)
					return nil
				}

				if showFiles {
					for _, bucket := range buckets {
						fmt.Fprintf(out, "%s/\n", bucket)
						for _, file := range d.Assets.Files(bucket) {
							fmt.Fprintf(out, "  %s\n", file)
						}
					}
					return nil
				}

				tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "BUCKET\tIMAGES")
				for _, bucket := range buckets {
					fmt.Fprintf(tw, "%s\t%d\n", bucket, len(d.Assets.Files(bucket)))
				}
				fmt.Fprintf(tw, "total\t%d\n", d.Assets.Len())
				return tw.Flush()
			})
		},
	}

	cmd.Flags().BoolVar(&showFiles, "files", false, "List every file per bucket")

	return cmd
}
