package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/rawbytedev/disjoint"
	"github.com/rawbytedev/disjoint/pkg/groupfile"
)

func fileFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "file",
		Aliases:  []string{"f"},
		Usage:    "Path to a .yaml, .yml or .toml group document",
		Required: true,
	}
}

func lengthFlag() cli.Flag {
	return &cli.IntFlag{
		Name:    "length",
		Aliases: []string{"n"},
		Usage:   "Sequence length to check against (defaults to the document's length)",
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "groupcheck",
		Usage: "Check and preview disjoint group documents",
		Commands: []*cli.Command{
			{
				Name:    "validate",
				Aliases: []string{"v"},
				Usage:   "Check that every range is in bounds and no two ranges overlap",
				Flags: []cli.Flag{
					fileFlag(),
					lengthFlag(),
					&cli.BoolFlag{
						Name:  "shared",
						Usage: "Allow overlapping ranges (read-only borrows)",
					},
				},
				Action: func(cCtx *cli.Context) error {
					doc, err := loadDocument(cCtx)
					if err != nil {
						return err
					}
					return validate(cCtx.App.Writer, doc, cCtx.Bool("shared"))
				},
			},
			{
				Name:    "show",
				Aliases: []string{"s"},
				Usage:   "Print the indexes each group borrows",
				Flags:   []cli.Flag{fileFlag(), lengthFlag()},
				Action: func(cCtx *cli.Context) error {
					doc, err := loadDocument(cCtx)
					if err != nil {
						return err
					}
					return show(cCtx.App.Writer, doc)
				},
			},
		},
	}
}

func loadDocument(cCtx *cli.Context) (*groupfile.Document, error) {
	doc, err := groupfile.Load(cCtx.String("file"))
	if err != nil {
		return nil, err
	}
	if cCtx.IsSet("length") {
		n := cCtx.Int("length")
		if n < 0 {
			return nil, fmt.Errorf("--length: %w: %d", groupfile.ErrNegativeLength, n)
		}
		doc.Length = n
	}
	return doc, nil
}

func validate(w io.Writer, doc *groupfile.Document, shared bool) error {
	check := disjoint.Validate
	if shared {
		check = disjoint.ValidateShared
	}
	err := check(doc.Bounds(), doc.Request())
	if err == nil {
		fmt.Fprintln(w, "ok")
		return nil
	}
	var verr *disjoint.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintf(w, "%s\n", verr.Kind)
	}
	return err
}

// maxShowLength caps the index sequence show materializes.
const maxShowLength = 1 << 20

var errTooLong = errors.New("length too large to show")

func show(w io.Writer, doc *groupfile.Document) error {
	if doc.Length > maxShowLength {
		return fmt.Errorf("%w: %d > %d", errTooLong, doc.Length, maxShowLength)
	}
	seq := make([]int, doc.Length)
	for i := range seq {
		seq[i] = i
	}
	views, err := disjoint.BorrowGroups(seq, doc.Request())
	if err != nil {
		return err
	}
	names := doc.Names()
	for i, v := range views {
		items := make([]string, 0, v.Len())
		for _, idx := range v.All() {
			items = append(items, fmt.Sprint(idx))
		}
		fmt.Fprintf(w, "%s: [%s]\n", names[i], strings.Join(items, " "))
	}
	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("groupcheck: ")
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
