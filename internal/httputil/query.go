package httputil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/url"
	"reflect"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// GetURLFields inspects the query of u for the `form` tags of the filter struct.
//
// queryFields are the names of set fields that can be passed to a gorm Where
// directly. Fields tagged with `filterField:"false"` are handled by the caller
// and only reported in setFields, which lists every field present in the
// query, including ones with an empty value.
func GetURLFields(u *url.URL, filter any) (queryFields []any, setFields []string) {
	query := u.Query()
	t := reflect.Indirect(reflect.ValueOf(filter)).Type()

	for i := range t.NumField() {
		f := t.Field(i)
		if !query.Has(f.Tag.Get("form")) {
			continue
		}

		setFields = append(setFields, f.Name)
		if f.Tag.Get("filterField") != "false" {
			queryFields = append(queryFields, f.Name)
		}
	}

	return queryFields, setFields
}

// GetBodyFields returns the names of the fields of resource whose `json` key
// is present in the request body, even when its value is null.
//
// The body is restored afterwards, so gin's bind methods can still read it.
func GetBodyFields(c *gin.Context, resource any) ([]any, error) {
	body, _ := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(body, &keys); err != nil {
		log.Debug().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return []any{}, ErrInvalidBody
	}

	var fields []any
	t := reflect.Indirect(reflect.ValueOf(resource)).Type()
	for i := range t.NumField() {
		f := t.Field(i)
		if _, ok := keys[f.Tag.Get("json")]; ok {
			fields = append(fields, f.Name)
		}
	}

	return fields, nil
}
