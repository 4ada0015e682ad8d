package valueobject

import (
	"fmt"
	"strings"
	"unicode/utf8"

	domainerror "github.com/household-expenses/backend/internal/domain/error"
)

// boundedText checks a required free-text field. Length is measured on the raw
// input, the returned value is trimmed.
func boundedText(field, raw string, maxLength int) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", domainerror.NewValueError(
			domainerror.ErrCodeBlankText,
			field,
			field+" is required",
			nil,
		)
	}
	if utf8.RuneCountInString(raw) > maxLength {
		return "", domainerror.NewValueError(
			domainerror.ErrCodeTextTooLong,
			field,
			fmt.Sprintf("%s must not exceed %d characters", field, maxLength),
			nil,
		)
	}
	return strings.TrimSpace(raw), nil
}
