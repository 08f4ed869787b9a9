package validator

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"hotel-management/errors"
	"hotel-management/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var phoneRegex = regexp.MustCompile(`^[0-9]{10,11}$`)

// Register gắn các rule riêng của hệ thống vào validator:
//   - phone: 10 hoặc 11 chữ số
//   - notpast: ngày không được trước hôm nay (theo today)
//
// và cho validator hiểu models.Date (zero là rỗng) và decimal.Decimal.
func Register(v *validator.Validate, today func() models.Date) error {
	v.RegisterTagNameFunc(jsonFieldName)
	v.RegisterCustomTypeFunc(dateValue, models.Date{})
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	if err := v.RegisterValidation("phone", isValidPhone); err != nil {
		return err
	}
	return v.RegisterValidation("notpast", notPast(today))
}

// RegisterWithGin đăng ký các rule trên engine validator mà gin binding dùng
func RegisterWithGin(today func() models.Date) error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected gin validator engine %T", binding.Validator.Engine())
	}
	return Register(v, today)
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

func dateValue(field reflect.Value) interface{} {
	d, ok := field.Interface().(models.Date)
	if !ok || d.IsZero() {
		return nil
	}
	return d.Time
}

func decimalValue(field reflect.Value) interface{} {
	d, ok := field.Interface().(decimal.Decimal)
	if !ok {
		return nil
	}
	return d.InexactFloat64()
}

func isValidPhone(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(fl.Field().String())
}

func notPast(today func() models.Date) validator.Func {
	return func(fl validator.FieldLevel) bool {
		t, ok := fl.Field().Interface().(time.Time)
		if !ok {
			// rỗng thì để required xử lý
			return true
		}
		return !models.DateOf(t).Before(today())
	}
}

// FieldErrors đổi lỗi validate thành map field -> thông báo. Tên field theo json, có cả đường dẫn lồng nhau (vd. guest.phone).
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return nil
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fieldPath(fe)] = message(fe)
	}
	return fields
}

func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "phone":
		return "must be 10 or 11 digits"
	case "notpast":
		return "must not be before today"
	case "uuid":
		return "must be a UUID"
	case "numeric":
		return "must contain digits only"
	case "gte":
		return "must be at least " + fe.Param()
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	default:
		return "is invalid (" + fe.Tag() + ")"
	}
}

// BindError đổi lỗi từ ShouldBind* thành AppError VALIDATION_ERROR
func BindError(err error) *errors.AppError {
	if fields := FieldErrors(err); fields != nil {
		return errors.NewValidationError(fields)
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case stderrors.As(err, &typeErr):
		return errors.NewValidationError(map[string]string{typeErr.Field: "has the wrong type"})
	case stderrors.Is(err, models.ErrInvalidDate):
		return errors.NewAppError(errors.ErrCodeValidation, "dates must use the format "+models.DateLayout, err)
	case stderrors.As(err, &syntaxErr):
		return errors.NewAppError(errors.ErrCodeValidation, "malformed JSON body", err)
	}
	return errors.NewAppError(errors.ErrCodeValidation, "invalid request body", err)
}

// MissingField tạo lỗi validate cho một field bắt buộc không có trong request
func MissingField(field string) *errors.AppError {
	return errors.NewValidationError(map[string]string{field: "is required"})
}
