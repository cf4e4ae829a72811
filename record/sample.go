package record

// Sample returns a fully built adult character. Every optional group is
// present and the relationship list holds three people.
func Sample() *Character {
	return &Character{
		Identity: Identity{Name: "Ada Marsh", Age: 34, Sex: SexFemale, Handedness: HandednessLeft},
		Body: Body{
			Height:   Height{Feet: 5, Inches: 7},
			MassKg:   63.5,
			ShoeSize: 7,
		},
		Arms: Limbs{
			Left:  Limb{Strength: 55, Flexibility: 60, Stiffness: 40},
			Right: Limb{Strength: 58, Flexibility: 60, Stiffness: 40},
		},
		Legs: Limbs{
			Left:  Limb{Strength: 70, Flexibility: 55, Stiffness: 45},
			Right: Limb{Strength: 70, Flexibility: 55, Stiffness: 45},
		},
		Eyes: &Eyes{
			Left:  Eye{Acuity: 1.0},
			Right: Eye{Acuity: 1.0},
			Color: EyeColorHazel,
		},
		Skin:    Skin{Wrinkles: 12, Freckles: 30, Scars: 2},
		Hair:    Hair{Greyness: 5, LengthCm: 24, Style: "bob"},
		Fitness: Fitness{Stamina: 62, Reflexes: 58, Balance: 66},
		Habits:  Habits{DrinksPerWeek: 3, SleepHours: 7.5},
		Relationships: Relationships{People: []Person{
			{Name: "Tom Marsh", Kind: RelationFamily, Closeness: 80, Alive: true},
			{Name: "Ivy Chen", Kind: RelationFriend, Closeness: 65, Alive: true},
			{Name: "Rex Hall", Kind: RelationRival, Closeness: 10, Alive: true},
		}},
	}
}
