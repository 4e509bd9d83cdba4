package config

import (
	"flag"
	"strings"
)

// flags holds the command-line overrides. Only flags that were given on the
// command line are applied.
type flags struct {
	set *flag.FlagSet

	config     *string
	debug      *bool
	model      *string
	builtin    *string
	out        *string
	format     *string
	width      *int
	height     *int
	fov        *float64
	gate       *string
	ortho      *bool
	yaw        *float64
	pitch      *float64
	roll       *float64
	wireframe  *bool
	bbox       *bool
	noFaces    *bool
	background *string
	save       *bool
}

func newFlags(set *flag.FlagSet) *flags {
	return &flags{
		set:        set,
		config:     set.String("config", "", "Path to config file"),
		debug:      set.Bool("debug", false, "Enable debug logging"),
		model:      set.String("model", "", "Wavefront .obj model to render"),
		builtin:    set.String("builtin", "", "Built-in model (cube, pyramid)"),
		out:        set.String("out", "", "Output image path"),
		format:     set.String("format", "", "Output format (png, bmp)"),
		width:      set.Int("width", 0, "Image width in pixels"),
		height:     set.Int("height", 0, "Image height in pixels"),
		fov:        set.Float64("fov", 0, "Horizontal field of view in degrees"),
		gate:       set.String("gate", "", "Resolution gate (overscan, fill)"),
		ortho:      set.Bool("ortho", false, "Use orthographic projection"),
		yaw:        set.Float64("yaw", 0, "Object yaw in degrees"),
		pitch:      set.Float64("pitch", 0, "Object pitch in degrees"),
		roll:       set.Float64("roll", 0, "Object roll in degrees"),
		wireframe:  set.Bool("wireframe", false, "Draw triangle outlines"),
		bbox:       set.Bool("bbox", false, "Draw triangle bounding boxes"),
		noFaces:    set.Bool("no-faces", false, "Skip filling triangles"),
		background: set.String("background", "", "Background color (#rrggbb)"),
		save:       set.Bool("save", false, "Write the resolved config to the user config directory"),
	}
}

var cli = newFlags(flag.CommandLine)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ParseArgs parses args into the command-line flag set. Subcommand CLIs
// call it with the arguments after the subcommand name.
func ParseArgs(args []string) error {
	return flag.CommandLine.Parse(args)
}

// Args returns the non-flag arguments left after parsing.
func Args() []string {
	return flag.CommandLine.Args()
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return *cli.config
}

// SaveRequested reports whether -save was given.
func SaveRequested() bool {
	return *cli.save
}

// visited returns the names of flags given on the command line.
func (f *flags) visited() map[string]bool {
	seen := make(map[string]bool)
	f.set.Visit(func(fl *flag.Flag) { seen[fl.Name] = true })
	return seen
}

// apply copies command-line overrides into cfg.
func (f *flags) apply(cfg *Config) {
	seen := f.visited()

	if *f.debug {
		cfg.Logging.Level = "debug"
	}
	if *f.model != "" {
		cfg.Scene.Model = *f.model
	}
	if *f.builtin != "" {
		cfg.Scene.Builtin = *f.builtin
		if !seen["model"] {
			cfg.Scene.Model = ""
		}
	}
	if *f.out != "" {
		cfg.Output.Path = *f.out
	}
	if *f.format != "" {
		cfg.Output.Format = strings.ToLower(*f.format)
	}
	if *f.width > 0 {
		cfg.Camera.Width = *f.width
	}
	if *f.height > 0 {
		cfg.Camera.Height = *f.height
	}
	if seen["fov"] {
		cfg.Camera.FieldOfView = *f.fov
	}
	if *f.gate != "" {
		cfg.Camera.Gate = *f.gate
	}
	if *f.ortho {
		cfg.Camera.Projection = "orthographic"
	}
	if seen["yaw"] {
		cfg.Render.Yaw = *f.yaw
	}
	if seen["pitch"] {
		cfg.Render.Pitch = *f.pitch
	}
	if seen["roll"] {
		cfg.Render.Roll = *f.roll
	}
	if *f.wireframe {
		cfg.Render.Wireframe = true
	}
	if *f.bbox {
		cfg.Render.BoundingBoxes = true
	}
	if *f.noFaces {
		cfg.Render.Faces = false
	}
	if *f.background != "" {
		cfg.Render.Background = *f.background
	}
}
