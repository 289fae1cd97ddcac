// Command arenabench drives push/get/set/pop rounds against an arena-backed
// array and reports how the arena grows.
package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/lmittmann/tint"
	"github.com/spf13/pflag"

	arena "github.com/pavanmanishd/arenaindex"
	"github.com/pavanmanishd/arenaindex/array"
)

var (
	Capacity = pflag.IntP("capacity", "c", arena.DefaultCapacity, "initial segment capacity in bytes")
	Width    = pflag.IntP("width", "w", array.DefaultWidth, "index tree width")
	Count    = pflag.IntP("count", "n", 100000, "elements pushed per round")
	Size     = pflag.IntP("size", "s", 16, "element size in bytes (at least 8)")
	Rounds   = pflag.IntP("rounds", "r", 4, "rounds, with an arena reset between rounds")
	Budget   = pflag.Int64P("budget", "b", 0, "memory budget in bytes (0 for unlimited)")
	LogLevel = pflag.String("log-level", "info", "log level (debug, info, warn, error)")
	LogJSON  = pflag.Bool("log-json", false, "use json logs")
	Help     = pflag.BoolP("help", "h", false, "show this help text")
)

func main() {
	pflag.Parse()

	if *Help || pflag.NArg() != 0 {
		fmt.Printf("usage: %s [options]\n%s", os.Args[0], pflag.CommandLine.FlagUsages())
		if *Help {
			return
		}
		os.Exit(2)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(*LogLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "error: invalid log level %q\n", *LogLevel)
		os.Exit(2)
	}
	if *LogJSON {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})))
	} else {
		slog.SetDefault(slog.New(tint.NewHandler(os.Stdout, &tint.Options{
			Level: level,
		})))
	}

	if *Size < 8 {
		fmt.Fprintf(os.Stderr, "error: element size must be at least 8\n")
		os.Exit(2)
	}
	if *Count < 1 {
		fmt.Fprintf(os.Stderr, "error: count must be positive\n")
		os.Exit(2)
	}

	if err := run(); err != nil {
		slog.Error("benchmark failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	opts := []arena.Option{arena.WithLogger(slog.Default())}
	if *Budget > 0 {
		opts = append(opts, arena.WithBudget(arena.NewBudget(*Budget)))
	}
	a, err := arena.Open(*Capacity, opts...)
	if err != nil {
		return fmt.Errorf("open arena: %w", err)
	}
	defer a.Close()

	for round := range *Rounds {
		start := time.Now()
		if err := runRound(a); err != nil {
			if errors.Is(err, arena.ErrBudgetExceeded) {
				slog.Warn("round stopped by budget", "round", round, "error", err)
				return nil
			}
			return fmt.Errorf("round %d: %w", round, err)
		}
		m := a.Metrics()
		slog.Info("round complete",
			"round", round,
			"elapsed", time.Since(start),
			"segments", m.NumSegments,
			"size", humanize.IBytes(uint64(m.Size)),
			"capacity", humanize.IBytes(uint64(m.Capacity)),
			"utilization", fmt.Sprintf("%.1f%%", m.Utilization*100),
		)
		a.Reset()
	}
	return nil
}

func runRound(a *arena.Arena) error {
	arr, err := array.NewWidth(a, *Width)
	if err != nil {
		return err
	}

	buf := make([]byte, *Size)
	for i := range *Count {
		binary.LittleEndian.PutUint64(buf, uint64(i))
		if err := arr.Push(buf); err != nil {
			return fmt.Errorf("push %d: %w", i, err)
		}
	}

	for range *Count {
		i := rand.IntN(arr.Len())
		b, ok := arr.Get(i)
		if !ok {
			return fmt.Errorf("get %d: missing", i)
		}
		if v := binary.LittleEndian.Uint64(b); v != uint64(i) {
			return fmt.Errorf("get %d: got %d", i, v)
		}
		binary.LittleEndian.PutUint64(buf, uint64(i))
		if err := arr.Set(i, buf); err != nil {
			return fmt.Errorf("set %d: %w", i, err)
		}
	}

	for arr.Len() > 0 {
		if _, ok := arr.Pop(); !ok {
			return fmt.Errorf("pop at length %d: missing", arr.Len())
		}
	}
	slog.Debug("round drained", "pushed", *Count, "width", arr.Width())
	return nil
}
