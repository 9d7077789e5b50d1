// file: internals/helpers/validator.go
package helper

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct chạy validator v10 trên DTO và trả về map lỗi theo field
// (dùng chung với JsonValidationError). Trả về nil nếu hợp lệ.
func ValidateStruct(s any) map[string][]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrors := map[string][]string{}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		fieldErrors["_"] = []string{err.Error()}
		return fieldErrors
	}

	for _, fe := range ve {
		fieldErrors[fe.Field()] = append(fieldErrors[fe.Field()], fe.Tag())
	}
	return fieldErrors
}
