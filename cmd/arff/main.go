// Command arff inspects ARFF files.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"gonum.org/v1/gonum/mat"

	"github.com/henrygouk/arff"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("arff: ")

	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

var labelsFlag = &cli.IntFlag{
	Name:    "labels",
	Usage:   "label column count when the relation name has no -C flag",
	Value:   1,
	EnvVars: []string{"ARFF_LABELS"},
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "arff",
		Usage: "inspect Attribute-Relation File Format datasets",
		Commands: []*cli.Command{
			{
				Name:      "describe",
				Usage:     "print the relation, attributes and row count",
				ArgsUsage: "FILE",
				Flags:     []cli.Flag{labelsFlag},
				Action: func(c *cli.Context) error {
					ds, err := load(c)
					if err != nil {
						return err
					}
					describe(c.App.Writer, ds)
					return nil
				},
			},
			{
				Name:      "matrix",
				Usage:     "print the numeric matrix",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					labelsFlag,
					&cli.StringFlag{
						Name:    "part",
						Usage:   "columns to print: all, features or labels",
						Value:   "all",
						EnvVars: []string{"ARFF_PART"},
					},
				},
				Action: func(c *cli.Context) error {
					ds, err := load(c)
					if err != nil {
						return err
					}
					return printMatrix(c.App.Writer, ds, c.String("part"))
				},
			},
		},
	}
}

func load(c *cli.Context) (*arff.Dataset, error) {
	if c.NArg() != 1 {
		return nil, cli.Exit("expected exactly one FILE argument", 2)
	}
	return arff.NewParser().WithDefaultLabelCount(c.Int("labels")).Load(c.Args().First())
}

func describe(w io.Writer, ds *arff.Dataset) {
	fmt.Fprintf(w, "relation: %s\n", ds.Name)
	fmt.Fprintf(w, "rows: %d\n", len(ds.Rows))
	fmt.Fprintf(w, "labels: %d\n", ds.LabelCount)

	for i, a := range ds.Attributes {
		role := "feature"
		if i >= ds.NumFeatures() {
			role = "label"
		}
		line := fmt.Sprintf("%3d %-7s %-11s %s", i, role, a.Kind(), a.Name())
		if a.IsCategorical() {
			line += " {" + strings.Join(a.Categories(), ",") + "}"
		}
		fmt.Fprintln(w, line)
	}
}

func printMatrix(w io.Writer, ds *arff.Dataset, part string) error {
	var (
		m   *mat.Dense
		err error
	)
	switch part {
	case "all":
		m, err = ds.Matrix()
	case "features":
		m, err = ds.Features()
	case "labels":
		m, err = ds.Labels()
	default:
		return cli.Exit(fmt.Sprintf("unknown part %q", part), 2)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%v\n", mat.Formatted(m, mat.Squeeze()))
	return nil
}
