// Command-line tool for inspecting array files, local or remote.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/spikekit/go-mda/mda"
)

func main() {
	cmd := &cli.Command{
		Name:  "mdainfo",
		Usage: "inspect MDA array files",
		Commands: []*cli.Command{
			{
				Name:      "info",
				Usage:     "print the header of an array file",
				ArgsUsage: "<path or URL>",
				Action:    runInfo,
			},
			{
				Name:      "head",
				Usage:     "print the leading elements of an array file",
				ArgsUsage: "<path or URL>",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "count",
						Usage: "number of elements to print",
						Value: 10,
					},
				},
				Action: runHead,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "mdainfo: %v\n", err)
		os.Exit(1)
	}
}

// openReader opens a local path, or a remote file when the argument
// looks like an HTTP(S) URL.
func openReader(ctx context.Context, arg string) (*mda.Reader, error) {
	if strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://") {
		return mda.OpenRemote(ctx, arg)
	}
	return mda.Open(arg)
}

func runInfo(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one path or URL")
	}

	r, err := openReader(ctx, c.Args().First())
	if err != nil {
		return err
	}
	defer r.Close()

	h := r.Header()
	fmt.Printf("type:          %s (code %d)\n", h.DataType, h.DataType.Code())
	fmt.Printf("bytes/entry:   %d\n", h.BytesPerEntry)
	fmt.Printf("dimensions:    %v\n", h.Dims)
	fmt.Printf("elements:      %d\n", h.NumElements())
	fmt.Printf("header bytes:  %d\n", h.Size())
	fmt.Printf("wide dims:     %v\n", h.WideDims)
	return nil
}

func runHead(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one path or URL")
	}

	r, err := openReader(ctx, c.Args().First())
	if err != nil {
		return err
	}
	defer r.Close()

	count := c.Int("count")
	if count < 0 {
		return fmt.Errorf("count must be non-negative")
	}
	if total := r.NumElements(); count > total {
		count = total
	}

	chunk, err := r.ReadChunk1D(ctx, 0, count)
	if err != nil {
		return err
	}
	widened, err := chunk.AsType(mda.Float64)
	if err != nil {
		return err
	}
	values, err := widened.Float64s()
	if err != nil {
		return err
	}

	for i, v := range values {
		fmt.Printf("[%d] %v\n", i, v)
	}
	return nil
}
