package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"lifegrid/internal/app"
	"lifegrid/internal/instances"
	"lifegrid/pkg/core"
)

func main() {
	cfg := app.NewConfig()
	configFile := flag.String("config", "", "optional JSON config file applied before flags")
	count := flag.Int("instances", 1, "number of simulations to run side by side")
	ticks := flag.Int("ticks", 1000, "generations to run; 0 runs until interrupted")
	workers := flag.Int("workers", runtime.NumCPU(), "goroutines used to tick instances")
	reportEvery := flag.Duration("report", time.Second, "interval between progress reports")
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if *configFile != "" {
		if err := cfg.LoadFile(*configFile); err != nil {
			log.Fatal(err)
		}
		flag.Parse()
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	if *count < 1 {
		log.Fatalf("instances must be positive, got %d", *count)
	}

	mgr := instances.NewManager()
	for i := 0; i < *count; i++ {
		sim, err := cfg.NewSim()
		if err != nil {
			log.Fatal(err)
		}
		if cfg.Pattern == "" {
			sim.Reset(cfg.Seed + int64(i))
		}
		if err := mgr.Put(fmt.Sprintf("sim-%d", i), sim); err != nil {
			log.Fatal(err)
		}
	}
	log.Printf("running %d instance(s) of %dx%d, %d workers", mgr.Len(), cfg.Width, cfg.Height, *workers)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stats, err := run(ctx, mgr, *ticks, *workers, cfg.TPS, *reportEvery)
	if err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
	log.Printf("done: %d generations in %.1fs, avg population %.1f",
		stats.Generations, stats.Runtime(time.Now()).Seconds(), stats.AveragePopulation)
}

// run ticks every instance until ticks generations have passed or ctx ends.
// A positive tps paces the loop; otherwise it runs flat out.
func run(ctx context.Context, mgr *instances.Manager, ticks, workers, tps int, reportEvery time.Duration) (*core.Stats, error) {
	start := time.Now()
	stats := core.NewStats(start)
	var pacer *core.Pacer
	if tps > 0 {
		pacer = core.NewPacer(tps, nil)
	}

	var (
		done       int
		lastReport = start
		batch      int
	)
	for ticks == 0 || done < ticks {
		due := 1
		if pacer != nil {
			due = pacer.Due()
			if due == 0 {
				select {
				case <-ctx.Done():
					return stats, ctx.Err()
				case <-time.After(pacer.Wait()):
				}
				continue
			}
		}
		for i := 0; i < due && (ticks == 0 || done < ticks); i++ {
			if err := mgr.TickAll(ctx, workers); err != nil {
				return stats, err
			}
			done++
			batch++
		}

		if now := time.Now(); now.Sub(lastReport) >= reportEvery {
			pop := population(mgr)
			stats.Update(batch, pop, now.Sub(lastReport))
			log.Printf("gen %d | live %d | %.1f gen/s", stats.Generations, pop, stats.GenerationsPerSecond)
			lastReport = now
			batch = 0
		}
	}
	stats.Update(batch, population(mgr), time.Since(lastReport))
	return stats, nil
}

func population(mgr *instances.Manager) int {
	total := 0
	for _, name := range mgr.Names() {
		sim, err := mgr.Get(name)
		if err != nil {
			continue
		}
		total += sim.Population()
	}
	return total
}
