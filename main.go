package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Zentaurios/basex402/internal/app"
	"github.com/Zentaurios/basex402/internal/render"
	"github.com/Zentaurios/basex402/internal/system"
	"github.com/Zentaurios/basex402/internal/tier"
)

const (
	envOutDir   = "BASEX402_OUT"
	envTiers    = "BASEX402_TIERS"
	envStdioLog = "BASEX402_STDIO_LOG"
)

func main() {
	outDefault := os.Getenv(envOutDir)
	if outDefault == "" {
		outDefault = "./generated"
	}

	out := flag.String("out", outDefault, "output directory; also configurable via "+envOutDir)
	only := flag.String("only", "", "comma separated jobs to run: gifs,pngs,logos,favicons,og,banner (default all)")
	tiers := flag.String("tiers", os.Getenv(envTiers), "comma separated tier slugs for per-tier jobs; also configurable via "+envTiers)
	tierFile := flag.String("tier-file", "", "YAML file with tier palette overrides")
	fontPath := flag.String("font", "", "TTF/OTF file tried before the built-in font candidates")
	size := flag.Int("size", render.DefaultWidth, "animation frame size in pixels")
	dither := flag.Bool("dither", false, "Floyd-Steinberg dither GIF frames")
	fbTier := flag.String("fb", "", "play this tier's animation on the framebuffer instead of writing files")
	fbLoops := flag.Int("fb-loops", 0, "framebuffer loops (0 plays until Esc, Q, F4 or a signal)")
	debug := flag.Bool("debug", false, "enable debug logging to ./basex402-debug.log")
	verbose := flag.Bool("v", false, "print progress details to stderr")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via "+envStdioLog)
	flag.Parse()

	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv(envStdioLog)
	}
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	var logger app.Logger = app.ConsoleLogger{W: os.Stderr, Verbose: *verbose}
	if *debug {
		f, err := os.OpenFile("./basex402-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = app.MultiLogger{logger, app.NewFileLogger(f)}
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := tier.Default()
	if *tierFile != "" {
		var err error
		reg, err = tier.LoadOverridesFile(reg, *tierFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "tier overrides:", err)
			os.Exit(2)
		}
	}

	candidates := render.DefaultFontCandidates
	if *fontPath != "" {
		candidates = append([]render.FontSource{{Path: *fontPath}}, candidates...)
	}
	fonts := render.ResolveFonts(candidates, logger)

	a := app.New(fonts, *out)
	a.Registry = reg
	a.Tiers = splitList(*tiers)
	a.Logger = logger
	a.Progress = os.Stdout
	a.Driver.Width, a.Driver.Height = *size, *size
	a.Driver.Dither = *dither

	if *fbTier != "" {
		if err := playOnFramebuffer(ctx, a, *fbTier, *fbLoops, logger); err != nil {
			fmt.Fprintln(os.Stderr, "framebuffer:", err)
			os.Exit(1)
		}
		return
	}

	jobs, err := app.SelectJobs(splitList(*only))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	rep, err := a.Run(ctx, jobs)
	printSummary(rep)
	if err != nil {
		fmt.Fprintln(os.Stderr, "interrupted:", err)
		os.Exit(130)
	}
	if !rep.OK() {
		os.Exit(1)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func printSummary(rep app.Report) {
	failed := rep.Failed()
	fmt.Printf("%d artifacts written, %d failed in %s\n", len(rep.Artifacts)-len(failed), len(failed), rep.Elapsed.Round(time.Millisecond))
	for _, f := range failed {
		fmt.Printf("  FAILED %s/%s: %v\n", f.Job, f.Name, f.Err)
	}
}

// playOnFramebuffer renders one tier and loops it on /dev/fb0 with the
// console in graphics mode.
func playOnFramebuffer(ctx context.Context, a *app.App, slug string, loops int, logger app.Logger) error {
	cfg, ok := a.Registry.Get(slug)
	if !ok {
		return fmt.Errorf("unknown tier %q (have %s)", slug, strings.Join(a.Registry.Slugs(), ", "))
	}
	frames, err := a.Driver.RenderAll(cfg)
	if err != nil {
		return err
	}
	imgs := make([]image.Image, len(frames))
	for i, f := range frames {
		imgs[i] = f
	}

	player := render.NewFBPlayer()
	player.Logger = logger
	if err := player.Open(); err != nil {
		return err
	}
	defer player.Close()

	console := &system.Console{Logger: logger}
	_ = console.EnterGraphics()
	defer console.Restore()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	system.StopOnKeys(ctx, logger, cancel)

	err = player.Play(ctx, imgs, a.Driver.Delay, loops)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
