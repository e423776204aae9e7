package server

import (
	"bytes"
	"io"
	"net/http"

	"github.com/erraggy/oastools/httpvalidator"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/erraggy/mosscow/jsonvalue"
)

// requestValidation rejects requests that do not match the OpenAPI
// document with 400 and a list of issues.
func requestValidation(v *httpvalidator.Validator, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const op = "server.requestValidation"

		// The validator consumes the body; keep a copy for the handler.
		var body []byte
		if c.Request.Body != nil {
			var err error
			body, err = io.ReadAll(c.Request.Body)
			if err != nil {
				handleError(c, log.WithField("operation", op), err)
				return
			}
			c.Request.Body = io.NopCloser(bytes.NewReader(body))
		}

		result, err := v.ValidateRequest(c.Request)
		if body != nil {
			c.Request.Body = io.NopCloser(bytes.NewReader(body))
		}
		if err != nil {
			handleError(c, log.WithField("operation", op), err)
			return
		}
		if result.Valid {
			c.Next()
			return
		}

		issues := make(jsonvalue.Sequence, 0, len(result.Errors))
		for _, e := range result.Errors {
			issues = append(issues, jsonvalue.String(e.Path+": "+e.Message))
		}
		log.WithFields(logrus.Fields{
			"operation": op,
			"path":      c.Request.URL.Path,
			"issues":    len(issues),
		}).Debug("request rejected")
		writeValue(c, http.StatusBadRequest, messageBody(issues))
		c.Abort()
	}
}
