package record

//go:generate go tool stringer -type=Sex -linecomment -output=sex_string.go
//go:generate go tool stringer -type=Handedness -linecomment -output=handedness_string.go
//go:generate go tool stringer -type=EyeColor -linecomment -output=eyecolor_string.go
//go:generate go tool stringer -type=RelationKind -linecomment -output=relationkind_string.go

type Sex int

const (
	SexUnspecified Sex = iota // unspecified
	SexMale                   // male
	SexFemale                 // female

	// SexTotal is the number of defined values
	SexTotal = int(iota)
)

type Handedness int

const (
	HandednessRight        Handedness = iota // right
	HandednessLeft                           // left
	HandednessAmbidextrous                   // ambidextrous

	HandednessTotal = int(iota)
)

type EyeColor int

const (
	EyeColorBrown EyeColor = iota // brown
	EyeColorBlue                  // blue
	EyeColorGreen                 // green
	EyeColorHazel                 // hazel
	EyeColorGrey                  // grey

	EyeColorTotal = int(iota)
)

type RelationKind int

const (
	RelationFriend    RelationKind = iota // friend
	RelationFamily                        // family
	RelationPartner                       // partner
	RelationRival                         // rival
	RelationColleague                     // colleague

	RelationKindTotal = int(iota)
)
