package catalog

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	validate       = validator.New()
	presetKeyRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)
)

func init() {
	_ = validate.RegisterValidation("presetkey", func(fl validator.FieldLevel) bool {
		return presetKeyRegex.MatchString(fl.Field().String())
	})
}

// Preset is a user-defined category saved alongside the built-ins.
type Preset struct {
	Key   string   `json:"key" validate:"required,max=32,presetkey"`
	Label string   `json:"label,omitempty" validate:"max=64"`
	Meals []string `json:"meals" validate:"required,min=1,dive,required"`
}

// Validate checks the preset shape. Meal names are checked for presence
// only; their spelling is up to the user.
func (p Preset) Validate() error {
	return validate.Struct(p)
}

// ValidKey reports whether key can name a stored preset.
func ValidKey(key string) bool {
	return validate.Var(key, "required,max=32,presetkey") == nil
}

// Category converts the preset to a catalog entry.
func (p Preset) Category() Category {
	label := strings.TrimSpace(p.Label)
	if label == "" {
		label = p.Key
	}
	return Category{
		Key:    p.Key,
		Label:  label,
		Meals:  append([]string(nil), p.Meals...),
		Preset: true,
	}
}

// MarshalPreset serialises a preset for storage.
func MarshalPreset(p Preset) ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// UnmarshalPreset decodes and validates a stored preset.
func UnmarshalPreset(data []byte) (Preset, error) {
	var p Preset
	if err := json.Unmarshal(data, &p); err != nil {
		return Preset{}, err
	}
	if err := p.Validate(); err != nil {
		return Preset{}, err
	}
	return p, nil
}
