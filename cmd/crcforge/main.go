// Command crcforge forges a message suffix that drives a CRC-32 checksum
// to a chosen value.
//
// Usage:
//
//	crcforge [flags] <prefix> <target>
//
// The target and the -polynomial flag accept decimal, 0x, 0o and 0b
// notation. On success the forged message is printed to stdout with
// non-printable bytes escaped; diagnostics go to stderr as structured
// logs. Exit code 0 means a suffix was found, 1 a usage error, 2 a search
// that was canceled or ran out of candidates.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"
	"time"

	"github.com/LynnColeArt/crcforge"
	"github.com/LynnColeArt/crcforge/crc"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("crcforge", flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage: crcforge [flags] <prefix> <target>\n\n")
		fmt.Fprintf(out, "Find a suffix so that the CRC of prefix followed by suffix equals target.\n")
		fmt.Fprintf(out, "Numbers accept decimal, 0x, 0o and 0b notation.\n\n")
		fmt.Fprintf(out, "Flags:\n")
		fs.PrintDefaults()
	}

	var (
		polynomial = fs.String("polynomial", fmt.Sprintf("%#x", uint64(crcforge.DefaultGenerator)),
			"generator polynomial in the 33-bit convention")
		ascii    = fs.Bool("ascii", false, "limit the suffix to printable characters, widening it from 4 to 8 bytes")
		workers  = fs.Int("workers", runtime.GOMAXPROCS(0), "parallel search workers")
		rateLim  = fs.Float64("rate", 0, "candidate throughput cap per second across all workers, 0 is unlimited")
		timeout  = fs.Duration("timeout", 0, "give up after this long, 0 is no limit")
		progress = fs.Duration("progress", crcforge.DefaultProgressInterval, "interval between progress logs, 0 disables them")
		verbose  = fs.Bool("v", false, "debug logging")
		jsonLogs = fs.Bool("json", false, "JSON logs instead of text")
		cpuinfo  = fs.Bool("cpuinfo", false, "print CPU features and the active multiplier path, then exit")
		version  = fs.Bool("version", false, "print the module version, then exit")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if *version {
		v, sum := crcforge.Version()
		if v == "" {
			v = "(devel)"
		}
		fmt.Printf("crcforge %s %s %s/%s\n", v, sum, runtime.GOOS, runtime.GOARCH)
		return 0
	}
	if *cpuinfo {
		fmt.Println(crcforge.DetectCPU())
		return 0
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return 1
	}
	prefix := []byte(fs.Arg(0))

	target, err := strconv.ParseUint(fs.Arg(1), 0, 32)
	if err != nil {
		fmt.Fprintf(os.Stderr, "crcforge: bad target %q: %v\n", fs.Arg(1), err)
		return 1
	}
	poly, err := strconv.ParseUint(*polynomial, 0, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "crcforge: bad polynomial %q: %v\n", *polynomial, err)
		return 1
	}

	engine, err := crc.New(poly)
	if err != nil {
		fmt.Fprintf(os.Stderr, "crcforge: %v\n", err)
		return 1
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := crcforge.NewTextLogger(level)
	if *jsonLogs {
		logger = crcforge.NewJSONLogger(level)
	}

	s, err := crcforge.NewSearcher(engine, prefix, uint32(target),
		crcforge.WithASCII(*ascii),
		crcforge.WithWorkers(*workers),
		crcforge.WithRateLimit(*rateLim),
		crcforge.WithProgressInterval(*progress),
		crcforge.WithLogger(logger),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "crcforge: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	res, err := s.Run(ctx)
	if err != nil {
		logger.Error("search failed", "error", err, "tried", s.Tried())
		return 2
	}

	// End-to-end check over the whole message before printing it.
	if sum := engine.Checksum(res.Message); sum != uint32(target) {
		logger.Error("forged message does not verify",
			"checksum", fmt.Sprintf("%#010x", sum), "target", fmt.Sprintf("%#010x", target))
		return 2
	}

	fmt.Println(crcforge.Escape(res.Message))
	logger.Debug("search stats",
		"index", res.Index, "tried", res.Tried,
		"elapsed", res.Elapsed.Round(time.Millisecond).String())
	return 0
}
