package record

import "math"

// Character is the root record.
type Character struct {
	Identity      Identity      `json:"identity"`
	Body          Body          `json:"body"`
	Arms          Limbs         `json:"arms"`
	Legs          Limbs         `json:"legs"`
	Eyes          *Eyes         `json:"eyes"` // nil until built
	Skin          Skin          `json:"skin"`
	Hair          Hair          `json:"hair"`
	Fitness       Fitness       `json:"fitness"`
	Habits        Habits        `json:"habits"`
	Relationships Relationships `json:"relationships"`
}

type Identity struct {
	Name       string     `json:"name"`
	Age        int        `json:"age"`
	Sex        Sex        `json:"sex"`
	Handedness Handedness `json:"handedness"`
}

type Body struct {
	Height   Height  `json:"height"`
	MassKg   float64 `json:"massKg"`
	ShoeSize int     `json:"shoeSize"` // index into the shoe size table
}

// Height is kept as feet and inches; Inches is normalized into [0, 12).
type Height struct {
	Feet   int `json:"feet"`
	Inches int `json:"inches"`
}

// Unset reports whether the height has not been generated yet.
func (h Height) Unset() bool {
	return h.Feet == 0 && h.Inches == 0
}

// TotalInches returns the height as a single quantity, saturating at the
// bounds of int.
func (h Height) TotalInches() int {
	switch {
	case h.Feet > (math.MaxInt-max(h.Inches, 0))/12:
		return math.MaxInt
	case h.Feet < (math.MinInt-min(h.Inches, 0))/12:
		return math.MinInt
	}

	return h.Feet*12 + h.Inches
}

// HeightFromInches splits a total into feet and inches.
func HeightFromInches(total int) Height {
	if total < 0 {
		total = 0
	}

	return Height{Feet: total / 12, Inches: total % 12}
}

// Meters converts the height to meters.
func (h Height) Meters() float64 {
	return float64(h.TotalInches()) * 0.0254
}

type Limbs struct {
	Left  Limb `json:"left"`
	Right Limb `json:"right"`
}

type Limb struct {
	Strength    int `json:"strength"`
	Flexibility int `json:"flexibility"`
	Stiffness   int `json:"stiffness"`
}

type Eyes struct {
	Left  Eye      `json:"left"`
	Right Eye      `json:"right"`
	Color EyeColor `json:"color"`
}

type Eye struct {
	Acuity float64 `json:"acuity"`
}

type Skin struct {
	Wrinkles int `json:"wrinkles"`
	Freckles int `json:"freckles"`
	Scars    int `json:"scars"`
}

type Hair struct {
	Greyness int     `json:"greyness"`
	LengthCm float64 `json:"lengthCm"`
	Style    string  `json:"style"`
}

type Fitness struct {
	Stamina  float64 `json:"stamina"`
	Reflexes float64 `json:"reflexes"`
	Balance  float64 `json:"balance"`
}

type Habits struct {
	Smoker        bool    `json:"smoker"`
	DrinksPerWeek int     `json:"drinksPerWeek"`
	SleepHours    float64 `json:"sleepHours"`
}

type Relationships struct {
	People []Person `json:"people"`
}

type Person struct {
	Name      string       `json:"name"`
	Kind      RelationKind `json:"kind"`
	Closeness int          `json:"closeness"`
	Alive     bool         `json:"alive"`
}

// Clone returns a deep copy of c.
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}

	out := *c

	if c.Eyes != nil {
		eyes := *c.Eyes
		out.Eyes = &eyes
	}

	if c.Relationships.People != nil {
		out.Relationships.People = append([]Person(nil), c.Relationships.People...)
	}

	return &out
}

// BuildEyes attaches an Eyes group if the record has none yet and returns it.
func (c *Character) BuildEyes() *Eyes {
	if c.Eyes == nil {
		c.Eyes = &Eyes{}
	}

	return c.Eyes
}
