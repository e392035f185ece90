package main

import (
	"context"
	"fmt"
	"go/format"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/delaneyj/coldsignal/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	genericParamCountKey = "count"
	outputDirKey         = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the combine-latest operators",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  genericParamCountKey,
				Usage: "Highest number of inputs to generate a CombineN for",
				Value: 4,
			},
			&cli.StringFlag{
				Name:  outputDirKey,
				Usage: "Directory of the combine package",
				Value: "combine",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for combine started !")
	defer func() {
		log.Printf("Codegen for combine finished in %v", time.Since(start))
	}()

	count := int(cmd.Uint(genericParamCountKey))
	if count < 2 {
		return fmt.Errorf("count must be at least 2, got %d", count)
	}

	contents, err := format.Source([]byte(templates.CombineGen(count)))
	if err != nil {
		return fmt.Errorf("formatting generated code: %w", err)
	}

	out := filepath.Join(cmd.String(outputDirKey), "combine_gen.go")
	if err := os.WriteFile(out, contents, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	log.Printf("Wrote %s with Combine2..Combine%d", out, count)
	return nil
}
