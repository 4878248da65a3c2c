package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"mad-life/internal/app"
	"mad-life/internal/core"
	_ "mad-life/internal/patterns"
	"mad-life/pkg/life"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	gens := flag.Int("gens", 100, "generations to simulate")
	every := flag.Int("every", 10, "print a status line every n generations (0 for none)")
	out := flag.String("out", "", "write the final grid to this file")
	list := flag.Bool("list", false, "list built-in patterns and exit")
	flag.Parse()

	if *list {
		for _, name := range core.PatternNames() {
			fmt.Println(name)
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	ctl, err := app.Setup(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}

	start := time.Now()
	report(ctl)
	for done := 0; done < *gens; {
		n := *gens - done
		if *every > 0 {
			n = min(n, *every)
		}
		ctl.Advance(n)
		done += n
		if *every > 0 {
			report(ctl)
		}
	}
	if *every <= 0 {
		report(ctl)
	}
	fmt.Printf("\n%d generations in %s\n", *gens, time.Since(start).Round(time.Millisecond))

	if *out != "" {
		if err := writeGrid(ctl, *out); err != nil {
			log.Fatal(err)
		}
	}
}

func report(ctl *app.Controller) {
	ctl.View(func(g *life.Grid) {
		bounds := "-"
		if r, ok := g.Bounds(); ok {
			bounds = r.String()
		}
		fmt.Printf("gen=%d alive=%d bounds=%s\n", g.Generation(), g.Len(), bounds)
	})
}

func writeGrid(ctl *app.Controller, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	var werr error
	ctl.View(func(g *life.Grid) { werr = life.Write(f, g) })
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return fmt.Errorf("write %s: %w", path, werr)
	}
	return nil
}
