package valueobject

// MaxPersonNameLength is the maximum length of a person name.
const MaxPersonNameLength = 200

// PersonName is a non-blank, trimmed person name.
type PersonName struct {
	value string
}

// NewPersonName validates and builds a PersonName.
func NewPersonName(raw string) (PersonName, error) {
	value, err := boundedText("name", raw, MaxPersonNameLength)
	if err != nil {
		return PersonName{}, err
	}
	return PersonName{value: value}, nil
}

// Value returns the trimmed name.
func (n PersonName) Value() string {
	return n.value
}

// String implements fmt.Stringer.
func (n PersonName) String() string {
	return n.value
}
