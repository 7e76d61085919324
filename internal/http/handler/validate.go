package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return v
}

type fieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// validationError is returned when a request does not match its declared shape.
type validationError struct {
	Fields []fieldError
}

func (e *validationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

var errMalformedBody = errors.New("malformed JSON body")

// bindJSON decodes the request body into dst and validates it. An empty body
// is treated as {} so that missing required fields surface as validation
// errors. Wrong JSON types are validation errors too; only syntactically
// broken JSON yields errMalformedBody.
func bindJSON(c *fiber.Ctx, dst any) error {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 {
		body = []byte("{}")
	}

	if err := c.App().Config().JSONDecoder(body, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			field, want := typeErr.Field, typeErr.Type.String()
			if field == "" {
				field, want = "body", "object"
			}
			return &validationError{Fields: []fieldError{{
				Field:   field,
				Rule:    "type",
				Message: fmt.Sprintf("%s must be of type %s", field, want),
			}}}
		}
		return errMalformedBody
	}

	return validateStruct(dst)
}

func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]fieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: fmt.Sprintf("%s is %s", fe.Field(), fe.Tag()),
		})
	}
	return &validationError{Fields: fields}
}
