package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	logicv1 "github.com/hnh-zeal/petopia-frontend-sub000/internal/logic/v1"
)

// RegisterBindingValidations adds the console's own tags to gin's validator.
func RegisterBindingValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("binding validator is not go-playground/validator")
	}
	return logicv1.RegisterValidations(v)
}

// bind fills form from the request body and validates it.
// Raw binding errors never reach the page; they become per-field or form-level messages.
func bind(c *gin.Context, form any) logicv1.FieldErrors {
	if err := c.ShouldBind(form); err != nil {
		return logicv1.FieldErrorsOf(err, form)
	}
	return nil
}

// mapForm fills form from the request body without validating it. Wizards validate
// one step at a time, so whole-struct binding validation would reject every early step.
func mapForm(c *gin.Context, form any) logicv1.FieldErrors {
	if err := c.Request.ParseMultipartForm(32 << 20); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return logicv1.FieldErrors{"": "The form could not be read. Please try again."}
	}
	if err := binding.MapFormWithTag(form, c.Request.PostForm, "form"); err != nil {
		return logicv1.FieldErrorsOf(err, form)
	}
	return nil
}

// applyErrors attaches field messages to v. Messages of fields that are not shown surface as the form error.
func applyErrors(v *view, errs logicv1.FieldErrors) {
	shown := map[string]bool{}
	for _, f := range v.Fields {
		shown[f.Name] = true
	}
	for name, msg := range errs {
		if !shown[name] && v.FormError == "" {
			v.FormError = msg
		}
	}
}
