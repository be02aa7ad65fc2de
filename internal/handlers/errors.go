package handlers

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"seya-store/internal/models"
)

const msgDatabaseNotConfigured = "Database not configured"

// ErrorResponse es el cuerpo de todas las respuestas de error
type ErrorResponse struct {
	Detail string                  `json:"detail"`
	Errors models.ValidationErrors `json:"errors,omitempty"`
}

// RegisterValidation hace que los errores de binding usen los nombres JSON de los campos
func RegisterValidation() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
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

func respondError(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Detail: detail})
}

func databaseNotConfigured(c *gin.Context) {
	respondError(c, http.StatusInternalServerError, msgDatabaseNotConfigured)
}

// serverError registra el error real y responde con el mensaje indicado
func serverError(c *gin.Context, err error, detail string) {
	_ = c.Error(err)
	log.Error().Err(err).Str("path", c.FullPath()).Msg(detail)
	respondError(c, http.StatusInternalServerError, detail)
}

// bindError traduce un fallo de ShouldBindJSON a 400
func bindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		respondError(c, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	fields := make(models.ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, models.FieldError{
			Field:   fieldPath(fe.Namespace()),
			Tag:     fe.Tag(),
			Message: fieldPath(fe.Namespace()) + " failed " + fe.Tag() + " validation",
		})
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Detail: fields.Error(), Errors: fields})
}

// validationError responde 400 con todos los errores del registro
func validationError(c *gin.Context, err error) {
	var verrs models.ValidationErrors
	if errors.As(err, &verrs) {
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Detail: verrs.Error(), Errors: verrs})
		return
	}
	respondError(c, http.StatusBadRequest, err.Error())
}

// fieldPath quita el nombre del struct raíz: "Checkout.items[0].quantity" -> "items[0].quantity"
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
