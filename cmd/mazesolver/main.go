// This defines the command-line maze solver: it carves a random maze, prints
// it, solves it with a breadth-first search and renders the search frames.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazepath/adjacency"
	"github.com/katalvlaran/mazepath/config"
	"github.com/katalvlaran/mazepath/generator"
	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/pathsearch"
	"github.com/katalvlaran/mazepath/render"
)

// Process exit codes.
const (
	exitOK     = 0
	exitFailed = 1
	exitNoPath = 2
)

func run() int {
	cfg, e := config.Load()
	if e != nil {
		fmt.Fprintf(os.Stderr, "%s\n", e)
		return exitFailed
	}

	var seed int64
	flag.IntVar(&cfg.Height, "height", cfg.Height, "The number of rows in the maze (odd, at least 5).")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "The number of columns in the maze (odd, at least 5).")
	flag.Int64Var(&seed, "seed", cfg.Seed, "The random seed. Defaults to the current time.")
	flag.StringVar(&cfg.PNGPath, "png", cfg.PNGPath, "If set, the solved maze is saved to this PNG file.")
	flag.IntVar(&cfg.CellPixels, "cell_pixels", cfg.CellPixels, "The width and height of one maze cell in the PNG.")
	flag.BoolVar(&cfg.Animate, "animate", cfg.Animate, "Print every search frame instead of only the final one.")
	flag.BoolVar(&cfg.Color, "color", cfg.Color, "Draw cells as ANSI colour blocks.")
	flag.DurationVar(&cfg.FrameDelay, "delay", cfg.FrameDelay, "The pause between animation frames.")
	flag.Parse()
	cfg.Seed = seed
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.HasSeed = true
		}
	})
	if e = cfg.Validate(); e != nil {
		fmt.Fprintf(os.Stderr, "%s\n", e)
		flag.Usage()
		return exitFailed
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(cfg.LogLevel)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	return execute(cfg, log, os.Stdout)
}

// execute runs generate, display, build, solve and the final renders, and
// returns the process exit code.
func execute(cfg config.Config, log logrus.FieldLogger, out io.Writer) int {
	var genOpts []generator.Option
	if cfg.HasSeed {
		genOpts = append(genOpts, generator.WithSeed(cfg.Seed))
	}
	g, e := generator.Generate(cfg.Height, cfg.Width, genOpts...)
	if e != nil {
		log.WithError(e).Error("generating maze")
		return exitFailed
	}
	log.WithFields(logrus.Fields{
		"height": cfg.Height,
		"width":  cfg.Width,
		"seed":   cfg.Seed,
	}).Debug("maze generated")

	textOpts := []render.TextOption{render.WithColor(cfg.Color)}
	if cfg.Animate {
		textOpts = append(textOpts, render.WithDelay(cfg.FrameDelay))
	} else {
		textOpts = append(textOpts, render.WithFinalOnly())
	}
	text := render.NewText(out, textOpts...)
	fmt.Fprintf(out, "Generated Maze\n")
	if e = text.Display(g); e != nil {
		log.WithError(e).Error("printing maze")
		return exitFailed
	}

	adj, e := adjacency.Build(g)
	if e != nil {
		log.WithError(e).Error("building adjacency")
		return exitFailed
	}
	start, _ := g.Find(grid.Start)
	end, _ := g.Find(grid.End)

	var pic *render.PNG
	if cfg.PNGPath != "" {
		pic = render.NewPNG(cfg.CellPixels)
	}
	renderer := pathsearch.RendererFunc(func(snapshot *grid.Grid, title string) {
		text.Render(snapshot, title)
		if pic != nil {
			pic.Render(snapshot, title)
		}
	})

	code := exitOK
	res, e := pathsearch.Solve(g, adj, start, end,
		pathsearch.WithRenderer(renderer),
		pathsearch.WithLogger(log))
	switch {
	case errors.Is(e, pathsearch.ErrNoPath):
		code = exitNoPath
	case e != nil:
		log.WithError(e).Error("solving maze")
		return exitFailed
	default:
		log.WithFields(logrus.Fields{
			"length": res.Length(),
			"steps":  res.Steps,
		}).Info("maze solved")
	}

	if e = text.Err(); e != nil {
		log.WithError(e).Error("printing frames")
		return exitFailed
	}
	if pic != nil {
		if e = pic.Save(cfg.PNGPath); e != nil {
			log.WithError(e).Error("saving image")
			return exitFailed
		}
		log.WithField("path", cfg.PNGPath).Info("image saved")
	}
	return code
}

func main() {
	os.Exit(run())
}
