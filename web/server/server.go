package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-weighted-raytracer/pkg/animation"
	"github.com/df07/go-weighted-raytracer/pkg/imaging"
	"github.com/df07/go-weighted-raytracer/pkg/scene"
)

const (
	DefaultTileSize = 32
	DefaultScene    = "default"

	minImageSize = 16
	maxImageSize = 2000
)

// Server handles web requests for the raytracer
type Server struct {
	port      int
	StaticDir string // Directory served at "/"; empty disables static files
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port, StaticDir: "static/"}
}

// RenderRequest holds the parameters shared by render and inspect requests
type RenderRequest struct {
	Scene              string  `json:"scene"`
	Width              int     `json:"width"`
	Height             int     `json:"height"`
	Time               float64 `json:"time"`               // Seconds into an animated scene
	MaxSamples         int     `json:"maxSamples"`         // Maximum samples per pixel
	MaxPasses          int     `json:"maxPasses"`          // Maximum number of passes
	IndirectSamples    int     `json:"indirectSamples"`    // Hemisphere samples per diffuse hit
	AdaptiveMinSamples float64 `json:"adaptiveMinSamples"` // Fraction of samples before adaptive stopping
	AdaptiveThreshold  float64 `json:"adaptiveThreshold"`  // Relative error threshold (0 disables)
}

// Handler returns the HTTP routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	if s.StaticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(s.StaticDir)))
	}
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"scenes": scene.List(),
		"limits": map[string]interface{}{
			"width":  map[string]int{"min": minImageSize, "max": maxImageSize},
			"height": map[string]int{"min": minImageSize, "max": maxImageSize},
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// parseCommonSceneParams reads the scene name, image size and time
func (s *Server) parseCommonSceneParams(r *http.Request, req *RenderRequest) error {
	query := r.URL.Query()

	req.Scene = query.Get("scene")
	if req.Scene == "" {
		req.Scene = DefaultScene
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 400, minImageSize, maxImageSize); err != nil {
		return err
	}
	if req.Height, err = parseIntParam(query, "height", 300, minImageSize, maxImageSize); err != nil {
		return err
	}
	if req.Time, err = parseFloatParam(query, "time", 0, 0, 3600); err != nil {
		return err
	}
	return nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %g and %g, got: %g", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// createScene builds the requested scene at the requested time.
// Times past the end of an animation show its last frame.
func (s *Server) createScene(req *RenderRequest) (*scene.Scene, error) {
	opts := scene.Options{AspectRatio: float64(req.Width) / float64(req.Height)}
	anim, err := scene.CreateAnimation(req.Scene, opts)
	if err != nil {
		return nil, err
	}
	t := animation.TimeStamp(min(animation.Seconds(req.Time), anim.Duration()))
	return anim.At(t), nil
}

// imageToBase64PNG encodes an image as base64 PNG
func (s *Server) imageToBase64PNG(img *imaging.Image) (string, error) {
	data, err := imaging.PNGBytes(img, imaging.PNGOptions{})
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// tileToBase64PNG encodes an already converted tile as base64 PNG
func (s *Server) tileToBase64PNG(tile *image.RGBA) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, tile); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
