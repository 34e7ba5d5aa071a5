// Command push3 runs a single Push3 program string and prints the final
// contents of every non-empty stack.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	push3 "github.com/jcorbin/push3"
	"github.com/jcorbin/push3/internal/logio"
)

func main() {
	log := &logio.Logger{}
	log.SetOutput(os.Stderr)
	defer func() { os.Exit(log.ExitCode()) }()

	app := &cli.App{
		Name:      "push3",
		Usage:     "run a Push3 program",
		ArgsUsage: "<program>",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "eval-push-limit", Value: 0, Usage: "override eval_push_limit (0 = default)"},
			&cli.BoolFlag{Name: "trace", Usage: "log each recovered instruction panic"},
			&cli.BoolFlag{Name: "dump", Usage: "print step count and termination reason"},
			&cli.Int64Flag{Name: "seed", Value: 1, Usage: "seed the random source"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("expected exactly one argument: the program string", 1)
			}
			return run(c, log)
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.ErrorIf(err)
	}
}

func run(c *cli.Context, log *logio.Logger) error {
	cfg := push3.DefaultConfiguration()
	if v := c.Int("eval-push-limit"); v > 0 {
		cfg.EvalPushLimit = v
	}
	if err := cfg.Validate(); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	cache := push3.NewDefaultCache(cfg)
	program, err := push3.Parse(c.Args().Get(0), cache, cfg)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	var opts []push3.Option
	opts = append(opts, push3.WithSeed(c.Int64("seed")))
	if c.Bool("trace") {
		opts = append(opts, push3.WithDiagnostic(func(instruction string, recovered interface{}) {
			log.Printf("TRACE", "recovered panic in %s: %v", instruction, recovered)
		}))
	}

	st := push3.New(cfg, opts...)
	result := push3.Run(context.Background(), st, cache, program)

	printStack(st.Integer.Items(), "INTEGER")
	printStack(st.Float.Items(), "FLOAT")
	printStack(st.Boolean.Items(), "BOOLEAN")
	printStack(st.Name.Items(), "NAME")
	printStack(st.Code.Items(), "CODE")
	printStack(st.Exec.Items(), "EXEC")

	if c.Bool("dump") {
		log.Printf("DUMP", "steps=%d step_limit_reached=%v", result.Steps, result.StepLimitReached)
	}
	return nil
}

func printStack(items []push3.Value, name string) {
	if len(items) == 0 {
		return
	}
	strs := make([]string, len(items))
	for i, v := range items {
		strs[i] = v.String()
	}
	fmt.Printf("%s: %v\n", name, strs)
}
