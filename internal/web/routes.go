package web

import (
	"bytes"
	"encoding/json"
	"image/png"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/Zentaurios/basex402/internal/anim"
	"github.com/Zentaurios/basex402/internal/art"
	"github.com/Zentaurios/basex402/internal/tier"
)

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Gallery serves token artwork and metadata. Artwork already written to
// OutDir is served from disk; anything missing is rendered on first
// request and kept in memory.
type Gallery struct {
	Registry *tier.Registry
	Artist   *art.Artist
	Driver   *anim.Driver
	// OutDir is the generator output directory. Empty disables the disk
	// lookup and the static file route.
	OutDir  string
	BaseURL string
	Logger  logger

	// Fonts cache faces per size and are not safe for concurrent use, so
	// rendering is serialized.
	renderMu sync.Mutex
	mu       sync.Mutex
	cache    map[string][]byte
}

// NewMux builds the preview routes:
//   - GET /{tokenId}/image       tier PNG
//   - GET /{tokenId}/animation   tier GIF
//   - GET /api/metadata/{tokenId} ERC-721 JSON
//   - /                          files below OutDir
func NewMux(g *Gallery) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{tokenId}/image", g.handleImage)
	mux.HandleFunc("GET /{tokenId}/animation", g.handleAnimation)
	mux.HandleFunc("GET /api/metadata/{tokenId}", g.handleMetadata)
	mux.Handle("/", StaticHandler(g.OutDir))
	return mux
}

// StaticHandler serves dir at "/". A missing directory serves 404s.
func StaticHandler(dir string) http.Handler {
	if st, err := os.Stat(dir); dir == "" || err != nil || !st.IsDir() {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		})
	}
	fileServer := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.URL.Path = filepath.ToSlash(filepath.Clean("/" + r.URL.Path))
		fileServer.ServeHTTP(w, r)
	})
}

// tokenTier resolves the {tokenId} path value or writes a 404.
func (g *Gallery) tokenTier(w http.ResponseWriter, r *http.Request) (tier.Config, int, bool) {
	raw := r.PathValue("tokenId")
	id, err := strconv.Atoi(raw)
	if err != nil {
		writeAPIError(w, http.StatusNotFound, "invalid_token", "invalid token id "+strconv.Quote(raw))
		return tier.Config{}, 0, false
	}
	cfg, err := g.Registry.ForToken(id)
	if err != nil {
		writeAPIError(w, http.StatusNotFound, "invalid_token", err.Error())
		return tier.Config{}, 0, false
	}
	return cfg, id, true
}

func (g *Gallery) handleMetadata(w http.ResponseWriter, r *http.Request) {
	cfg, id, ok := g.tokenTier(w, r)
	if !ok {
		return
	}
	base := g.BaseURL
	if base == "" {
		base = ProductionBaseURL
	}
	w.Header().Set("Cache-Control", "public, max-age=86400")
	writeJSON(w, http.StatusOK, Metadata(cfg, id, base))
}

func (g *Gallery) handleImage(w http.ResponseWriter, r *http.Request) {
	cfg, _, ok := g.tokenTier(w, r)
	if !ok {
		return
	}
	g.serveArtifact(w, r, filepath.Join("images", cfg.Slug()+".png"), "image/png", func() ([]byte, error) {
		img, err := g.Artist.TierPNG(cfg, g.Driver.Width)
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		err = png.Encode(&buf, img)
		return buf.Bytes(), err
	})
}

func (g *Gallery) handleAnimation(w http.ResponseWriter, r *http.Request) {
	cfg, _, ok := g.tokenTier(w, r)
	if !ok {
		return
	}
	g.serveArtifact(w, r, filepath.Join("animations", cfg.Slug()+".gif"), "image/gif", func() ([]byte, error) {
		frames, err := g.Driver.RenderAll(cfg)
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		err = g.Driver.Encode(&buf, frames, anim.Palette(cfg))
		return buf.Bytes(), err
	})
}

// serveArtifact writes the file rel below OutDir when it exists, otherwise
// the cached or freshly rendered bytes.
func (g *Gallery) serveArtifact(w http.ResponseWriter, r *http.Request, rel, contentType string, render func() ([]byte, error)) {
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if g.OutDir != "" {
		path := filepath.Join(g.OutDir, rel)
		if st, err := os.Stat(path); err == nil && st.Mode().IsRegular() {
			w.Header().Set("Content-Type", contentType)
			http.ServeFile(w, r, path)
			return
		}
	}

	data, err := g.cached(rel, render)
	if err != nil {
		if g.Logger != nil {
			g.Logger.Errorf("web", "render %s: %v", rel, err)
		}
		writeAPIError(w, http.StatusInternalServerError, "render_failed", err.Error())
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		_, _ = w.Write(data)
	}
}

func (g *Gallery) cached(key string, render func() ([]byte, error)) ([]byte, error) {
	g.mu.Lock()
	data, ok := g.cache[key]
	g.mu.Unlock()
	if ok {
		return data, nil
	}

	g.renderMu.Lock()
	defer g.renderMu.Unlock()
	// Another request may have rendered it while we waited.
	g.mu.Lock()
	data, ok = g.cache[key]
	g.mu.Unlock()
	if ok {
		return data, nil
	}

	data, err := render()
	if err != nil {
		return nil, err
	}
	if g.Logger != nil {
		g.Logger.Infof("web", "rendered %s (%d bytes)", key, len(data))
	}
	g.mu.Lock()
	if g.cache == nil {
		g.cache = map[string][]byte{}
	}
	g.cache[key] = data
	g.mu.Unlock()
	return data, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiError{Error: code, Message: message})
}
