package layout

import (
	stderrors "errors"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"

	errs "github.com/matzehuels/treeflow/pkg/errors"
)

// Default spacing values, taken from the reference presenter.
const (
	DefaultSibling     = 10.0
	DefaultParentChild = 100.0
)

// Spacing controls the distance between neighboring nodes.
type Spacing struct {
	// Sibling is the distance between adjacent leaves on the sibling axis.
	Sibling float64 `json:"sibling" yaml:"sibling" toml:"sibling" validate:"gt=0"`
	// ParentChild is the distance between consecutive levels on the depth axis.
	ParentChild float64 `json:"parent_child" yaml:"parent_child" toml:"parent_child" validate:"gt=0"`
}

// DefaultSpacing returns the spacing used when the caller sets none.
func DefaultSpacing() Spacing {
	return Spacing{Sibling: DefaultSibling, ParentChild: DefaultParentChild}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate returns an INVALID_SPACING error unless both fields are positive
// finite numbers.
func (s Spacing) Validate() error {
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if stderrors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fieldName(fe.Field()))
			}
			return errs.Wrap(errs.ErrCodeInvalidSpacing, err,
				"%s spacing must be greater than zero (sibling=%v, parent_child=%v)",
				strings.Join(fields, " and "), s.Sibling, s.ParentChild)
		}
		return errs.Wrap(errs.ErrCodeInvalidSpacing, err, "validate spacing")
	}
	if math.IsInf(s.Sibling, 0) || math.IsInf(s.ParentChild, 0) {
		return errs.New(errs.ErrCodeInvalidSpacing,
			"spacing must be finite (sibling=%v, parent_child=%v)", s.Sibling, s.ParentChild)
	}
	return nil
}

func fieldName(f string) string {
	switch f {
	case "Sibling":
		return "sibling"
	case "ParentChild":
		return "parent-child"
	default:
		return strings.ToLower(f)
	}
}
