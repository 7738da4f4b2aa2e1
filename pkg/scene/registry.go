package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-weighted-raytracer/pkg/animation"
)

// ErrUnknownScene is returned for scene names that are not registered
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
	Animated    bool   `json:"animated"`
}

// builder creates the animation for a built-in scene. Static scenes are
// constant animations of zero length.
type builder func(opts Options) (animation.Animation[*Scene], error)

type entry struct {
	info  SceneInfo
	build builder
}

var registry = map[string]entry{}

func register(id, description string, animated bool, build builder) {
	registry[id] = entry{
		info: SceneInfo{
			ID:          id,
			DisplayName: titleCase(id),
			Description: description,
			Animated:    animated,
		},
		build: build,
	}
}

func static(build func(opts Options) (*Scene, error)) builder {
	return func(opts Options) (animation.Animation[*Scene], error) {
		s, err := build(opts)
		if err != nil {
			return nil, err
		}
		return animation.Constant[*Scene]{Value: s}, nil
	}
}

func init() {
	register("default", "Two reflective spheres in front of a white wall", false, static(NewDefaultScene))
	register("shared", "One sphere shared by several transformers and materials", false, static(NewSharedScene))
	register("checker", "Checkerboard floor under an area light with indirect lighting", false, static(NewCheckerScene))
	register("animated", "Default scene with the camera sweeping from left to right", true, NewSweepAnimation)
	register("textured", "Image-textured sphere on a gradient floor", false, static(NewTexturedScene))
	register("sphere-grid", "Grid of shared spheres on a disc in front of a triangle backdrop", false, static(NewSphereGridScene))
	register("spring", "Default scene with a spring-driven camera", true, NewSpringAnimation)
}

// Names returns the IDs of all built-in scenes in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns the descriptions of all built-in scenes sorted by ID
func List() []SceneInfo {
	infos := make([]SceneInfo, 0, len(registry))
	for _, name := range Names() {
		infos = append(infos, registry[name].info)
	}
	return infos
}

// CreateAnimation builds the named scene as an animation
func CreateAnimation(name string, opts Options) (animation.Animation[*Scene], error) {
	e, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownScene, name, strings.Join(Names(), ", "))
	}
	a, err := e.build(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build scene %q: %w", name, err)
	}
	return a, nil
}

// Create builds the named scene at time zero
func Create(name string, opts Options) (*Scene, error) {
	a, err := CreateAnimation(name, opts)
	if err != nil {
		return nil, err
	}
	return a.At(0), nil
}

// titleCase turns a scene ID such as "sphere-grid" into "Sphere Grid"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
