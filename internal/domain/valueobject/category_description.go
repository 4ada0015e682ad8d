package valueobject

// MaxDescriptionLength is the maximum length of category and transaction descriptions.
const MaxDescriptionLength = 400

// CategoryDescription is a non-blank, trimmed category description.
type CategoryDescription struct {
	value string
}

// NewCategoryDescription validates and builds a CategoryDescription.
func NewCategoryDescription(raw string) (CategoryDescription, error) {
	value, err := boundedText("description", raw, MaxDescriptionLength)
	if err != nil {
		return CategoryDescription{}, err
	}
	return CategoryDescription{value: value}, nil
}

// Value returns the trimmed description.
func (d CategoryDescription) Value() string {
	return d.value
}

// String implements fmt.Stringer.
func (d CategoryDescription) String() string {
	return d.value
}
