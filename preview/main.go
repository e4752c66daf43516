// Command preview serves generated artwork and token metadata the way the
// collection site does, rendering anything missing from the output
// directory on first request.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Zentaurios/basex402/internal/anim"
	"github.com/Zentaurios/basex402/internal/app"
	"github.com/Zentaurios/basex402/internal/art"
	"github.com/Zentaurios/basex402/internal/render"
	"github.com/Zentaurios/basex402/internal/tier"
	"github.com/Zentaurios/basex402/internal/web"
)

func main() {
	defaults, err := web.DefaultServerConfigFromEnv(web.DefaultListenAddr)
	if err != nil {
		fmt.Println("server config error:", err)
		os.Exit(2)
	}

	outDefault := os.Getenv("BASEX402_OUT")
	if outDefault == "" {
		outDefault = "./generated"
	}

	listenAddr := flag.String("listen", defaults.ListenAddr, "http listen address; also configurable via "+web.EnvListenAddr)
	devMode := flag.Bool("dev", defaults.DevMode, "enable permissive CORS; also configurable via "+web.EnvDevMode)
	baseURL := flag.String("base-url", defaults.BaseURL, "origin written into metadata links; also configurable via "+web.EnvBaseURL)
	outDir := flag.String("out", outDefault, "generator output directory to serve")
	tierFile := flag.String("tier-file", "", "YAML file with tier palette overrides")
	verbose := flag.Bool("v", false, "log requests that render artwork")
	flag.Parse()

	logger := app.ConsoleLogger{W: os.Stderr, Verbose: *verbose}

	reg := tier.Default()
	if *tierFile != "" {
		reg, err = tier.LoadOverridesFile(reg, *tierFile)
		if err != nil {
			fmt.Println("tier overrides:", err)
			os.Exit(2)
		}
	}

	processCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fonts := render.ResolveFonts(render.DefaultFontCandidates, logger)
	gallery := &web.Gallery{
		Registry: reg,
		Artist:   art.New(fonts),
		Driver:   &anim.Driver{Compositor: anim.NewCompositor(fonts), Logger: logger},
		OutDir:   *outDir,
		BaseURL:  *baseURL,
		Logger:   logger,
	}

	handler := web.NewMux(gallery)
	server := web.NewHTTPServer(*listenAddr, handler)
	if *devMode {
		server.Handler = web.WithDevCORS(handler)
	}
	server.Logger = logger

	if err := server.Start(processCtx); err != nil {
		fmt.Println("server start error:", err)
		os.Exit(1)
	}

	host := displayHost(server.ListenAddr())
	fmt.Println("basex402 preview listening on", server.ListenAddr())
	fmt.Println("Serving:", *outDir)
	fmt.Println("Metadata: http://" + host + "/api/metadata/1")
	fmt.Println("Animation: http://" + host + "/1/animation")

	<-processCtx.Done()
	_ = server.Stop()
}

// displayHost turns a wildcard listen address into something a browser
// can open.
func displayHost(addr string) string {
	for _, wildcard := range []string{"[::]", "0.0.0.0"} {
		if strings.HasPrefix(addr, wildcard+":") {
			return "127.0.0.1" + strings.TrimPrefix(addr, wildcard)
		}
	}
	if strings.HasPrefix(addr, ":") {
		return "127.0.0.1" + addr
	}
	return addr
}
