package handler

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"taxengine/internal/gst"
)

var financialYearPattern = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}$`)

// identifierTags are the custom binding tags backed by the GST validators.
var identifierTags = map[string]func(string) bool{
	"gstin":         gst.ValidateGSTIN,
	"pan":           gst.ValidatePAN,
	"pincode":       gst.ValidatePincode,
	"statecode":     gst.ValidateStateCode,
	"hsn":           gst.ValidateHSNCode,
	"financialyear": financialYearPattern.MatchString,
}

// SetupValidator registers the custom binding tags on gin's validator and
// reports field names by their json (or form) tag.
func SetupValidator() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("handler.SetupValidator: unexpected validator engine")
	}
	return RegisterValidations(v)
}

// RegisterValidations adds the custom tags to v.
func RegisterValidations(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		return name
	})
	for tag, fn := range identifierTags {
		fn := fn
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return fn(fl.Field().String())
		}); err != nil {
			return err
		}
	}
	return nil
}

func validationDetails(err error) []FieldDetail {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldDetail{{Field: "body", Message: err.Error()}}
	}
	details := make([]FieldDetail, 0, len(verrs))
	for _, e := range verrs {
		details = append(details, FieldDetail{Field: fieldPath(e), Message: validationMessage(e)})
	}
	return details
}

// fieldPath drops the top-level struct name from the namespace.
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return "Must be at least " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return "Must be at most " + e.Param() + " characters"
		}
		return "Must be at most " + e.Param()
	case "oneof":
		return "Must be one of: " + e.Param()
	case "gstin":
		return "Invalid GSTIN format"
	case "pan":
		return "Invalid PAN format"
	case "pincode":
		return "Invalid PIN code"
	case "statecode":
		return "Invalid GST state code (01-38)"
	case "hsn":
		return "HSN/SAC code must be 4 to 8 digits"
	case "financialyear":
		return "Financial year must look like 2024-25"
	default:
		return "Invalid value"
	}
}
