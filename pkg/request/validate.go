package request

import (
	"errors"
	"fmt"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	da "github.com/lintang-b-s/drivingroute/pkg/datastructure"
	"github.com/lintang-b-s/drivingroute/pkg/util"
)

const locationTag = "location"

type segmentCheck struct {
	From da.Index `validate:"location"`
	To   da.Index `validate:"location"`
}

type requestCheck struct {
	Source        da.Index       `validate:"location"`
	Destination   da.Index       `validate:"location"`
	AvoidNodes    []da.Index     `validate:"omitempty,dive,location"`
	AvoidSegments []segmentCheck `validate:"omitempty,dive"`
	IncludeNode   *da.Index      `validate:"omitempty,location"`
}

// Validate checks that every location id in r lies in [0, numVertices).
func Validate(r *Request, numVertices int) error {
	check := requestCheck{
		Source:      r.source,
		Destination: r.destination,
		AvoidNodes:  r.avoidNodes,
		IncludeNode: r.includeNode,
	}
	for _, seg := range r.avoidSegments {
		check.AvoidSegments = append(check.AvoidSegments, segmentCheck{From: seg.GetFrom(), To: seg.GetTo()})
	}

	validate := validator.New()
	err := validate.RegisterValidation(locationTag, func(fl validator.FieldLevel) bool {
		return fl.Field().Uint() < uint64(numVertices)
	})
	if err != nil {
		return util.WrapErrorf(err, util.ErrInternalServerError, "register location validation")
	}

	if err := validate.Struct(check); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		_ = validate.RegisterTranslation(locationTag, trans,
			func(ut ut.Translator) error {
				return ut.Add(locationTag, "{0} must be a location id below {1}", true)
			},
			func(ut ut.Translator, fe validator.FieldError) string {
				t, _ := ut.T(locationTag, fe.Namespace(), fmt.Sprint(numVertices))
				return t
			})

		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		return util.WrapErrorf(nil, util.ErrBadParamInput, "validation error: %v", vvString)
	}
	return nil
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return []error{err}
	}
	for _, e := range validatorErrs {
		translatedErr := errors.New(e.Translate(trans))
		errs = append(errs, translatedErr)
	}
	return errs
}
