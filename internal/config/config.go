package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Variant string

const (
	// Closed form: the 17-gon's step comes from Gauss's cosine
	VariantGauss Variant = "gauss"
	// Step measured off Richmond's compass and straightedge construction
	VariantRichmond Variant = "richmond"
	// Plain regular polygon with a 2π/n step
	VariantRegular Variant = "regular"
)

type Circle struct {
	CenterX float64 `yaml:"center_x"`
	CenterY float64 `yaml:"center_y"`
	Radius  float64 `yaml:"radius"`
}

type Output struct {
	PNG string `yaml:"png"`
	SVG string `yaml:"svg"`
	// Pixels per unit
	Scale float64 `yaml:"scale"`
	// Print the PNG inline in the terminal
	Show bool `yaml:"show"`
	// Label points and draw construction circles and lines
	Scaffolding bool `yaml:"scaffolding"`
}

type Config struct {
	Circle   Circle  `yaml:"circle"`
	Vertices int     `yaml:"vertices"`
	Theta0   float64 `yaml:"theta0"`
	Variant  Variant `yaml:"variant"`
	// Layer sizes for the network diagram
	Layers []int  `yaml:"layers"`
	Output Output `yaml:"output"`
}

func Default() Config {
	return Config{
		Circle:   Circle{Radius: 3},
		Vertices: 17,
		Variant:  VariantGauss,
		Layers:   []int{3, 2, 4, 1},
		Output: Output{
			Scale:       80,
			Scaffolding: true,
		},
	}
}

// Read a YAML config on top of the defaults. Keys missing from the file keep
// their default values.
func Read(r io.Reader) (Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "decoding config")
	}
	return cfg, cfg.Validate()
}

func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "opening config")
	}
	defer f.Close()
	cfg, err := Read(f)
	return cfg, errors.Wrapf(err, "in %s", path)
}

func (cfg Config) Validate() error {
	if cfg.Circle.Radius <= 0 {
		return errors.Errorf("radius must be positive, got %v", cfg.Circle.Radius)
	}
	if cfg.Vertices < 3 {
		return errors.Errorf("a polygon needs at least 3 vertices, got %d", cfg.Vertices)
	}
	switch cfg.Variant {
	case VariantGauss, VariantRichmond:
		if cfg.Vertices != 17 {
			return errors.Errorf("variant %q only constructs 17-gons", cfg.Variant)
		}
	case VariantRegular:
	default:
		return errors.Errorf("unknown variant %q", cfg.Variant)
	}
	if cfg.Output.Scale <= 0 {
		return errors.Errorf("scale must be positive, got %v", cfg.Output.Scale)
	}
	return nil
}

func (cfg Config) Marshal() ([]byte, error) {
	return yaml.Marshal(cfg)
}
