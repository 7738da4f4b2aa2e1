package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-weighted-raytracer/pkg/core"
	"github.com/df07/go-weighted-raytracer/pkg/integrator"
	"github.com/df07/go-weighted-raytracer/pkg/material"
	"github.com/df07/go-weighted-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit        bool                   `json:"hit"`
	Point      [3]float64             `json:"point"`
	Normal     [3]float64             `json:"normal"`
	LocalPoint [3]float64             `json:"localPoint"`
	UV         [2]float64             `json:"uv"`
	Distance   float64                `json:"distance"`
	Color      [3]float64             `json:"color"` // Traced radiance through the pixel center
	Material   map[string]interface{} `json:"material,omitempty"`
}

func colorArray(c core.Color) [3]float64 {
	return [3]float64{c.R, c.G, c.B}
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func colorHex(c core.Color) string {
	c = c.Clamp(0, 1)
	return fmt.Sprintf("#%02x%02x%02x", int(c.R*255), int(c.G*255), int(c.B*255))
}

// brdfName names the BRDF driving indirect sampling
func brdfName(b material.BRDF) string {
	switch b.(type) {
	case nil:
		return "none"
	case *material.ConstantBRDF:
		return "constant"
	case material.LambertianBRDF, *material.LambertianBRDF:
		return "lambertian"
	case *material.PhongBRDF:
		return "phong"
	default:
		return "custom"
	}
}

// extractMaterialInfo describes the properties assigned at a hit
func extractMaterialInfo(props *material.Properties) map[string]interface{} {
	if props == nil {
		return nil
	}
	info := map[string]interface{}{
		"diffuse":          colorArray(props.Diffuse),
		"color":            colorHex(props.Diffuse),
		"reflection":       colorArray(props.Reflection),
		"specularColor":    colorArray(props.SpecularColor),
		"specularExponent": props.SpecularExponent,
		"brdf":             brdfName(props.BRDF),
	}
	if p, ok := props.BRDF.(*material.PhongBRDF); ok {
		info["phongExponent"] = p.Exponent
	}
	return info
}

// inspectPixel traces the ray through the pixel center and describes the first hit
func inspectPixel(sceneObj *scene.Scene, tracer integrator.Integrator, width, height, pixelX, pixelY int) InspectResponse {
	p := core.NewVec2((float64(pixelX)+0.5)/float64(width), (float64(pixelY)+0.5)/float64(height))

	for ray := range sceneObj.Camera.RaysThrough(p) {
		hit, ok := sceneObj.Root.FindFirstPositiveHit(ray)
		if !ok {
			return InspectResponse{Hit: false}
		}
		return InspectResponse{
			Hit:        true,
			Point:      vecArray(hit.GlobalPosition()),
			Normal:     vecArray(hit.Normal()),
			LocalPoint: vecArray(hit.LocalPosition.XYZ),
			UV:         [2]float64{hit.LocalPosition.UV.X, hit.LocalPosition.UV.Y},
			Distance:   hit.T * ray.Direction.Length(),
			Color:      colorArray(tracer.Trace(ray)),
			Material:   extractMaterialInfo(hit.MaterialProperties),
		}
	}
	return InspectResponse{Hit: false}
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	req := &RenderRequest{}
	if err := s.parseCommonSceneParams(r, req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid scene parameters: " + err.Error()})
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid x coordinate"})
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid y coordinate"})
		return
	}
	if pixelX < 0 || pixelX >= req.Width || pixelY < 0 || pixelY >= req.Height {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Pixel coordinates out of bounds"})
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	tracer, err := integrator.NewRayTracer(sceneObj, integrator.DefaultTracerConfig())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, inspectPixel(sceneObj, tracer, req.Width, req.Height, pixelX, pixelY))
}
