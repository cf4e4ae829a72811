package limits

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"charedit/fieldpath"
)

//go:embed curves.yaml
var defaultCurves []byte

// Config is the curve table driving the pass pipeline.
type Config struct {
	MaxAge int `yaml:"maxAge"`

	// PairedOffset is added to the left member of a paired organ to get the right one.
	PairedOffset float64 `yaml:"pairedOffset"`
	// StiffnessTolerance is how far stiffness may stray from 100-flexibility.
	StiffnessTolerance float64 `yaml:"stiffnessTolerance" validate:"gte=0"`
	// StrengthMassShift is the mass shift in kg per point of mean limb
	// strength above StrengthPivot.
	StrengthMassShift float64 `yaml:"strengthMassShift"`
	StrengthPivot     float64 `yaml:"strengthPivot"`

	Height     SexCurves  `yaml:"height"` // total inches
	BMI        FieldRange `yaml:"bmi"`
	MassDomain FieldRange `yaml:"massDomain"`
	Shoe       ShoeTable  `yaml:"shoe"`
	EyeAcuity  SexCurves  `yaml:"eyeAcuity"`

	Scalars []Rule `yaml:"scalars" validate:"dive"`
	Caps    []Rule `yaml:"caps" validate:"dive"`
}

// ShoeTable maps height onto an index into a table of Sizes shoe sizes.
type ShoeTable struct {
	Sizes        int     `yaml:"sizes" validate:"gt=0"`
	OriginInches float64 `yaml:"originInches"`
	PerInch      float64 `yaml:"perInch" validate:"gte=0"`
	Window       float64 `yaml:"window" validate:"gte=0"`
}

// Rule governs the fields at Paths with one curve under one logical key.
type Rule struct {
	Key   string    `yaml:"key" validate:"required"`
	Paths []string  `yaml:"paths" validate:"required,min=1,dive,fieldpath"`
	Curve SexCurves `yaml:"curve"`
}

var limitsValidate *validator.Validate

func init() {
	limitsValidate = validator.New()

	_ = limitsValidate.RegisterValidation("fieldpath", validateFieldPath)
}

// validateFieldPath checks that a string parses as a field path.
func validateFieldPath(fl validator.FieldLevel) bool {
	_, err := fieldpath.Parse(fl.Field().String())
	return err == nil
}

// DefaultConfig returns the embedded curve table.
func DefaultConfig() Config {
	cfg, err := ParseConfig(defaultCurves)
	if err != nil {
		panic(fmt.Sprintf("embedded curves.yaml: %v", err))
	}

	return cfg
}

// LoadConfig loads and parses a YAML curve table from the given path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read curve table %s: %w", path, err)
	}

	return ParseConfig(data)
}

// ParseConfig parses YAML data into a Config, fills defaults and validates it.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse curve table YAML: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.MaxAge == 0 {
		cfg.MaxAge = 120
	}

	if cfg.MassDomain == (FieldRange{}) {
		cfg.MassDomain = FieldRange{Min: 1, Max: 500}
	}

	curve := func(c *Curve) {
		if c.DeclineAge == 0 {
			c.DeclineAge = max(c.PeakAge, float64(cfg.MaxAge))
		}

		if c.BaseWidth == 0 {
			c.BaseWidth = c.Width
		}

		if c.Domain == (FieldRange{}) {
			c.Domain = unbounded
		}
	}

	cfg.Height.each(curve)
	cfg.EyeAcuity.each(curve)

	for i := range cfg.Scalars {
		cfg.Scalars[i].Curve.each(curve)
	}

	for i := range cfg.Caps {
		cfg.Caps[i].Curve.each(curve)
	}
}

// Validate checks the whole table and reports every failing section.
func (cfg *Config) Validate() error {
	var errs []error

	section := func(name string, v any) {
		if err := limitsValidate.Struct(v); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	section("height", cfg.Height)
	section("eyeAcuity", cfg.EyeAcuity)
	section("bmi", cfg.BMI)
	section("massDomain", cfg.MassDomain)
	section("shoe", cfg.Shoe)

	seen := make(map[string]bool)

	for _, rules := range []struct {
		kind  string
		rules []Rule
	}{{"scalar", cfg.Scalars}, {"cap", cfg.Caps}} {
		for _, r := range rules.rules {
			section(fmt.Sprintf("%s %q", rules.kind, r.Key), r)

			if seen[r.Key] {
				errs = append(errs, fmt.Errorf("%s %q: duplicate key", rules.kind, r.Key))
			}

			seen[r.Key] = true
		}
	}

	if cfg.MaxAge <= 0 {
		errs = append(errs, fmt.Errorf("maxAge: must be positive, got %d", cfg.MaxAge))
	}

	return errors.Join(errs...)
}

// Marshal serializes a Config to YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
