package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/erraggy/mosscow/internal/maputil"
	"github.com/erraggy/mosscow/jsonvalue"
	"github.com/erraggy/mosscow/todoerrors"
)

// Error messages sent to API clients.
const (
	MsgInvalidJSON = "set valid JSON for request raw body."
	MsgNotFound    = "todo not found"
	MsgUnexpected  = "unexpected error"
)

const contentTypeJSON = "application/json"

// writeValue encodes v as the response body.
func writeValue(c *gin.Context, status int, v jsonvalue.Value) {
	body, err := jsonvalue.Encode(v)
	if err != nil {
		c.Data(http.StatusInternalServerError, contentTypeJSON, []byte(`{"message":"`+MsgUnexpected+`"}`))
		return
	}
	c.Data(status, contentTypeJSON, body)
}

func messageBody(message jsonvalue.Value) jsonvalue.Mapping {
	return jsonvalue.NewMapping(jsonvalue.Entry{Key: jsonvalue.Text("message"), Value: message})
}

// writeMessage responds with {"message": msg} and stops the chain.
func writeMessage(c *gin.Context, status int, msg string) {
	writeValue(c, status, messageBody(jsonvalue.String(msg)))
	c.Abort()
}

// fieldMessages renders validation messages as a mapping of field name
// to a list of messages, fields sorted by name.
func fieldMessages(fields map[string][]string) jsonvalue.Mapping {
	names := maputil.SortedKeys(fields)
	entries := make([]jsonvalue.Entry, 0, len(names))
	for _, name := range names {
		msgs := make(jsonvalue.Sequence, len(fields[name]))
		for i, m := range fields[name] {
			msgs[i] = jsonvalue.String(m)
		}
		entries = append(entries, jsonvalue.Entry{Key: jsonvalue.Text(name), Value: msgs})
	}
	return jsonvalue.NewMapping(entries...)
}

// handleError maps an error from the store or the codec to a response.
func handleError(c *gin.Context, log *logrus.Entry, err error) {
	var verr *todoerrors.ValidationError
	switch {
	case errors.As(err, &verr):
		writeValue(c, http.StatusBadRequest, messageBody(fieldMessages(verr.Fields)))
		c.Abort()
	case errors.Is(err, todoerrors.ErrNotFound):
		writeMessage(c, http.StatusNotFound, MsgNotFound)
	case errors.Is(err, todoerrors.ErrDecode):
		writeMessage(c, http.StatusBadRequest, MsgInvalidJSON)
	default:
		log.WithError(err).Error("unexpected error")
		_ = c.Error(err)
		writeMessage(c, http.StatusInternalServerError, MsgUnexpected)
	}
}
