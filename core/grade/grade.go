// Package grade lists the ranks and disciplines taught at the academy.
package grade

// Dan is a black-belt rank as stored on a member (value) and shown to people (label).
type Dan struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Undefined is shown for members with no grade.
const Undefined = "Non défini"

var dans = [...]Dan{
	{Value: "debutant", Label: "Débutant"},
	{Value: "1dan", Label: "1er Dan"},
	{Value: "2dan", Label: "2ème Dan"},
	{Value: "3dan", Label: "3ème Dan"},
	{Value: "4dan", Label: "4ème Dan"},
	{Value: "5dan", Label: "5ème Dan"},
	{Value: "6dan", Label: "6ème Dan"},
	{Value: "7dan", Label: "7ème Dan"},
	{Value: "8dan", Label: "8ème Dan"},
	{Value: "9dan", Label: "9ème Dan"},
	{Value: "10dan", Label: "10ème Dan"},
}

// DanGrades returns every dan grade, lowest first.
func DanGrades() []Dan {
	l := make([]Dan, len(dans))
	copy(l, dans[:])
	return l
}

// DanLabel returns the label of value. Unknown values are shown as is.
func DanLabel(value string) string {
	for _, d := range dans {
		if d.Value == value {
			return d.Label
		}
	}
	if value == "" {
		return Undefined
	}
	return value
}

var disciplines = [...]string{
	"Self-Pro Krav (SPK)",
	"Krav Maga",
	"KAPAP",
	"Canne Défense",
	"Self Féminine (SFJL)",
	"Self Enfant",
	"ROS (Real Operational System)",
}

// Disciplines returns the disciplines taught at the academy.
func Disciplines() []string {
	l := make([]string, len(disciplines))
	copy(l, disciplines[:])
	return l
}

// BeltGrade is a coloured belt, below the dan grades.
type BeltGrade string

const (
	BeltWhite  BeltGrade = "Ceinture Blanche"
	BeltYellow BeltGrade = "Ceinture Jaune"
	BeltOrange BeltGrade = "Ceinture Orange"
	BeltGreen  BeltGrade = "Ceinture Verte"
	BeltBlue   BeltGrade = "Ceinture Bleue"
	BeltBrown  BeltGrade = "Ceinture Marron"
	BeltBlack  BeltGrade = "Ceinture Noire"
)

// Belts returns every belt, lowest first.
func Belts() []BeltGrade {
	return []BeltGrade{BeltWhite, BeltYellow, BeltOrange, BeltGreen, BeltBlue, BeltBrown, BeltBlack}
}

// Valid reports whether b is one of the known belts.
func (b BeltGrade) Valid() bool {
	switch b {
	case BeltWhite, BeltYellow, BeltOrange, BeltGreen, BeltBlue, BeltBrown, BeltBlack:
		return true
	}
	return false
}
