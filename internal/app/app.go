package app

import (
	"context"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/Zentaurios/basex402/internal/anim"
	"github.com/Zentaurios/basex402/internal/art"
	"github.com/Zentaurios/basex402/internal/render"
	"github.com/Zentaurios/basex402/internal/tier"
)

// Output subdirectories below App.OutDir.
const (
	AnimationsDir = "animations"
	ImagesDir     = "images"
	LogosDir      = "logos"
	IconsDir      = "icons"
)

// App runs generation jobs against one output directory.
type App struct {
	Registry *tier.Registry
	Artist   *art.Artist
	Driver   *anim.Driver
	OutDir   string
	// Tiers restricts per-tier jobs to these slugs; empty means all.
	Tiers  []string
	Logger Logger
	// Progress receives a status line when it is a terminal.
	Progress io.Writer
}

// New builds an App with the default registry and the given fonts.
func New(fonts *render.Fonts, outDir string) *App {
	return &App{
		Registry: tier.Default(),
		Artist:   art.New(fonts),
		Driver:   &anim.Driver{Compositor: anim.NewCompositor(fonts)},
		OutDir:   outDir,
		Logger:   NoopLogger{},
	}
}

// Artifact is one file a job tried to write.
type Artifact struct {
	Job  string
	Name string
	Path string
	Err  error
}

// Job produces a group of artifacts.
type Job struct {
	Name string
	Run  func(ctx context.Context, app *App) []Artifact
}

// Jobs returns every job in run order.
func Jobs() []Job {
	return []Job{
		{Name: "gifs", Run: runGIFs},
		{Name: "pngs", Run: runTierArt},
		{Name: "logos", Run: runLogos},
		{Name: "favicons", Run: runFavicons},
		{Name: "og", Run: runOG},
		{Name: "banner", Run: runBanners},
	}
}

// SelectJobs returns the jobs named in only, in run order. An empty list
// selects every job.
func SelectJobs(only []string) ([]Job, error) {
	all := Jobs()
	if len(only) == 0 {
		return all, nil
	}
	want := map[string]bool{}
	for _, name := range only {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		found := false
		for _, j := range all {
			if j.Name == name {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown job %q", name)
		}
		want[name] = true
	}
	var out []Job
	for _, j := range all {
		if want[j.Name] {
			out = append(out, j)
		}
	}
	return out, nil
}

// Report collects the artifacts of a run.
type Report struct {
	Artifacts []Artifact
	Elapsed   time.Duration
}

// Failed returns the artifacts that carry an error.
func (r Report) Failed() []Artifact {
	var out []Artifact
	for _, a := range r.Artifacts {
		if a.Err != nil {
			out = append(out, a)
		}
	}
	return out
}

func (r Report) OK() bool { return len(r.Failed()) == 0 }

// Run executes jobs in order. A failing artifact does not stop the run;
// a cancelled ctx stops it before the next job and is returned.
func (app *App) Run(ctx context.Context, jobs []Job) (Report, error) {
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	if app.Driver != nil && app.Driver.Logger == nil {
		app.Driver.Logger = app.Logger
	}
	start := time.Now()
	var rep Report
	prog := newProgress(app.Progress, len(jobs))
	defer prog.finish()
	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			rep.Elapsed = time.Since(start)
			return rep, err
		}
		prog.step(job.Name)
		jobStart := time.Now()
		arts := job.Run(ctx, app)
		failed := 0
		for _, a := range arts {
			if a.Err != nil {
				failed++
				app.Logger.Errorf(job.Name, "%s: %v", a.Name, a.Err)
			}
		}
		app.Logger.Infof(job.Name, "%d artifacts, %d failed (%s)", len(arts), failed, time.Since(jobStart).Round(time.Millisecond))
		rep.Artifacts = append(rep.Artifacts, arts...)
	}
	rep.Elapsed = time.Since(start)
	return rep, nil
}

// tiers returns the registry tiers filtered by app.Tiers.
func (app *App) tiers() ([]tier.Config, error) {
	if len(app.Tiers) == 0 {
		return app.Registry.All(), nil
	}
	var out []tier.Config
	for _, slug := range app.Tiers {
		cfg, ok := app.Registry.Get(slug)
		if !ok {
			return nil, fmt.Errorf("unknown tier %q", slug)
		}
		out = append(out, cfg)
	}
	return out, nil
}

func (app *App) path(elem ...string) string {
	return filepath.Join(append([]string{app.OutDir}, elem...)...)
}

func runGIFs(_ context.Context, app *App) []Artifact {
	tiers, err := app.tiers()
	if err != nil {
		return []Artifact{{Job: "gifs", Name: "tiers", Err: err}}
	}
	sum := app.Driver.GenerateAll(tiers, app.path(AnimationsDir))
	arts := make([]Artifact, 0, len(sum.Results))
	for _, r := range sum.Results {
		arts = append(arts, Artifact{Job: "gifs", Name: r.Tier + ".gif", Path: r.Path, Err: r.Err})
	}
	return arts
}

func runTierArt(ctx context.Context, app *App) []Artifact {
	tiers, err := app.tiers()
	if err != nil {
		return []Artifact{{Job: "pngs", Name: "tiers", Err: err}}
	}
	var arts []Artifact
	for _, cfg := range tiers {
		if ctx.Err() != nil {
			break
		}
		png := app.path(ImagesDir, cfg.Slug()+".png")
		img, err := app.Artist.TierPNG(cfg, render.DefaultWidth)
		if err == nil {
			err = art.WritePNG(png, img)
		}
		arts = append(arts, Artifact{Job: "pngs", Name: cfg.Slug() + ".png", Path: png, Err: err})

		svg := app.path(ImagesDir, cfg.Slug()+".svg")
		err = art.WriteTierSVG(svg, cfg, render.DefaultWidth)
		arts = append(arts, Artifact{Job: "pngs", Name: cfg.Slug() + ".svg", Path: svg, Err: err})
	}
	return arts
}

type logoFile struct {
	name        string
	size        int
	transparent bool
}

var logoFiles = []logoFile{
	{"logo.png", 512, false},
	{"logo-256.png", 256, false},
	{"logo-128.png", 128, false},
	{"logo-64.png", 64, false},
	{"logo-32.png", 32, false},
	{"logo-transparent.png", 512, true},
	{"logo-transparent-256.png", 256, true},
}

func runLogos(_ context.Context, app *App) []Artifact {
	arts := make([]Artifact, 0, len(logoFiles))
	for _, lf := range logoFiles {
		path := app.path(LogosDir, lf.name)
		err := art.WritePNG(path, app.Artist.LogoSquare(lf.size, lf.transparent))
		arts = append(arts, Artifact{Job: "logos", Name: lf.name, Path: path, Err: err})
	}
	return arts
}

var (
	faviconSizes = []int{16, 32, 48, 64, 128, 256}
	icoSizes     = []int{16, 32, 48, 64}
)

const appleTouchSize = 180

func runFavicons(_ context.Context, app *App) []Artifact {
	var arts []Artifact
	for _, s := range faviconSizes {
		name := fmt.Sprintf("favicon-%dx%d.png", s, s)
		path := app.path(IconsDir, name)
		err := art.WritePNG(path, app.Artist.Favicon(s))
		arts = append(arts, Artifact{Job: "favicons", Name: name, Path: path, Err: err})
	}

	touch := app.path(IconsDir, "apple-touch-icon.png")
	err := art.WritePNG(touch, app.Artist.LogoSquare(appleTouchSize, false))
	arts = append(arts, Artifact{Job: "favicons", Name: "apple-touch-icon.png", Path: touch, Err: err})

	images := make([]image.Image, 0, len(icoSizes))
	for _, s := range icoSizes {
		images = append(images, app.Artist.Favicon(s))
	}
	ico := app.path(IconsDir, "favicon.ico")
	err = art.WriteICOFile(ico, images)
	arts = append(arts, Artifact{Job: "favicons", Name: "favicon.ico", Path: ico, Err: err})
	return arts
}

func runOG(_ context.Context, app *App) []Artifact {
	arts := make([]Artifact, 0, len(art.DefaultOGCards))
	for _, card := range art.DefaultOGCards {
		name := card.Name + ".png"
		path := app.path(ImagesDir, name)
		img, err := app.Artist.OGImage(card)
		if err == nil {
			err = art.WritePNG(path, img)
		}
		arts = append(arts, Artifact{Job: "og", Name: name, Path: path, Err: err})
	}
	return arts
}

func runBanners(_ context.Context, app *App) []Artifact {
	collection := app.path(ImagesDir, "collection-banner.png")
	img, err := app.Artist.CollectionBanner(app.Registry)
	if err == nil {
		err = art.WritePNG(collection, img)
	}
	logo := app.path(ImagesDir, "logo-banner.png")
	return []Artifact{
		{Job: "banner", Name: "collection-banner.png", Path: collection, Err: err},
		{Job: "banner", Name: "logo-banner.png", Path: logo, Err: art.WritePNG(logo, app.Artist.LogoBanner())},
	}
}
