package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// phoneRe is the contact number format used instead of an email address:
// +375 followed by operator code and a 3-2-2 grouped subscriber number.
var phoneRe = regexp.MustCompile(`^\+375 \d{2} \d{3} \d{2} \d{2}$`)

// ValidPhone reports whether value is a correctly formatted phone number.
func ValidPhone(value string) bool {
	return phoneRe.MatchString(value)
}

// RegisterPhoneRule attaches the "phone_by" rule to gin's binding validator.
func RegisterPhoneRule() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}

	return v.RegisterValidation("phone_by", func(fl validator.FieldLevel) bool {
		return ValidPhone(fl.Field().String())
	})
}

func FormatValidationError(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, fieldError := range validationErrors {
			messages = append(messages, getFieldErrorMessage(fieldError))
		}
		return strings.Join(messages, "; ")
	}
	return err.Error()
}

func getFieldErrorMessage(fe validator.FieldError) string {
	field := getFieldName(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s: обязательное поле", field)
	case "phone_by":
		return fmt.Sprintf("%s: ожидается формат +375 XX XXX XX XX", field)
	case "min":
		return fmt.Sprintf("%s: минимум %s символов", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s: максимум %s символов", field, fe.Param())
	default:
		return fmt.Sprintf("%s: недопустимое значение", field)
	}
}

func getFieldName(field string) string {
	fieldNames := map[string]string{
		"Login":       "Логин",
		"Email":       "Номер телефона",
		"Password":    "Пароль",
		"Title":       "Заголовок",
		"Description": "Описание",
		"Text":        "Текст",
		"Type":        "Раздел",
	}

	if name, ok := fieldNames[field]; ok {
		return name
	}
	return field
}
