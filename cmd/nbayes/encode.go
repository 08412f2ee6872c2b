package main

import (
	"bufio"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/axelmagn/simple-nbclf/pkg/data"
	"github.com/axelmagn/simple-nbclf/pkg/dataprep"
)

var ClassesOutFlag = &cli.StringFlag{
	Name:  "classes-out",
	Usage: "Write the class names, one per line in column order, to this file",
}

var encodeCommand = &cli.Command{
	Name:      "encode",
	Usage:     "Turn a file of class labels (one per line) into a one-hot label matrix",
	ArgsUsage: "<labels>",
	Flags:     []cli.Flag{VerbosityFlag, ClassesOutFlag},
	Action:    encode,
}

func encode(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.Errorf("expected 1 argument (%s), got %d", ctx.Command.ArgsUsage, ctx.NArg())
	}
	if _, err := loadConfig(ctx); err != nil {
		return err
	}
	labels, err := readLabels(ctx.Args().First())
	if err != nil {
		return err
	}
	codes, names := dataprep.LabelEncode(labels)
	y := dataprep.OneHot(codes, len(names))
	log.WithField("classes", names).Info("Encoded labels")

	if path := ctx.String(ClassesOutFlag.Name); path != "" {
		if err := os.WriteFile(path, []byte(strings.Join(names, "\n")+"\n"), 0o644); err != nil {
			return errors.Wrap(err, "write class names")
		}
	}
	return data.Write(ctx.App.Writer, y)
}

// readLabels returns the trimmed non-empty lines of path.
func readLabels(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &data.IOError{Path: path, Err: err}
	}
	defer f.Close()

	var labels []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if l := strings.TrimSpace(scanner.Text()); l != "" {
			labels = append(labels, l)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &data.IOError{Path: path, Err: err}
	}
	return labels, nil
}
