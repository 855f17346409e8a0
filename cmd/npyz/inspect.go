package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/numgo-ml/npyz/npy"
	"github.com/numgo-ml/npyz/npz"
)

// entryInfo is the JSON shape of one inspected header.
type entryInfo struct {
	Name      string `json:"name,omitempty"`
	DType     string `json:"dtype"`
	Shape     []int  `json:"shape"`
	Fortran   bool   `json:"fortran_order"`
	ByteOrder string `json:"byte_order"`
	Elements  int    `json:"elements"`
	DataBytes int    `json:"data_bytes"`
}

func inspectCmd() *cli.Command {
	var (
		asJSON bool
		names  []string
	)

	return &cli.Command{
		Name:      "inspect",
		Usage:     "Show header metadata of .npy/.npz files without reading payloads",
		ArgsUsage: "<path> [<path>...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "emit JSON instead of text", Destination: &asJSON},
			&cli.StringSliceFlag{Name: "name", Aliases: []string{"n"}, Usage: "archive entry to inspect (repeatable, default all)", Destination: &names},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() < 1 {
				return cli.Exit("usage: npyz inspect [--json] [--name x] <path>...", 2)
			}
			for _, path := range cmd.Args().Slice() {
				if err := inspectPath(path, names, asJSON); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func inspectPath(path string, names []string, asJSON bool) error {
	entries, err := probe(path, names)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if asJSON {
		out := struct {
			Path    string      `json:"path"`
			Entries []entryInfo `json:"entries"`
		}{Path: path, Entries: entries}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("File: %s\n", path)
	for _, e := range entries {
		name := e.Name
		if name == "" {
			name = "-"
		}
		fmt.Printf("  %-20s %-10s shape=%v fortran=%v order=%s bytes=%d\n",
			name, e.DType, e.Shape, e.Fortran, e.ByteOrder, e.DataBytes)
	}
	return nil
}

// probe runs the header-only read path for a single stream or an archive,
// chosen by file suffix.
func probe(path string, names []string) ([]entryInfo, error) {
	if strings.HasSuffix(path, ".npz") {
		headers, err := npz.HeadersFile(path, names...)
		if err != nil {
			return nil, err
		}
		entries := make([]entryInfo, 0, len(headers))
		for name, h := range headers {
			entries = append(entries, headerInfo(name, h))
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
		return entries, nil
	}

	h, err := npy.ReadHeaderFile(path)
	if err != nil {
		return nil, err
	}
	return []entryInfo{headerInfo("", h)}, nil
}

func headerInfo(name string, h *npy.Header) entryInfo {
	return entryInfo{
		Name:      name,
		DType:     h.DType.String(),
		Shape:     []int(h.Shape),
		Fortran:   h.Fortran,
		ByteOrder: h.Order.String(),
		Elements:  h.Shape.NumElements(),
		DataBytes: h.NumBytes(),
	}
}
