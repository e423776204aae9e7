package server

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/erraggy/mosscow/internal/store"
	"github.com/erraggy/mosscow/jsonvalue"
	"github.com/erraggy/mosscow/keycase"
)

// Todos serves the /api/todos routes.
type Todos struct {
	log       *logrus.Logger
	todos     *store.Todos
	logDecode bool
}

// NewTodos returns the todo handlers. Malformed bodies are logged unless
// logDecode is false.
func NewTodos(todos *store.Todos, log *logrus.Logger, logDecode bool) *Todos {
	return &Todos{log: log, todos: todos, logDecode: logDecode}
}

// EnrichRoutes registers the todo routes on group.
func (h *Todos) EnrichRoutes(group gin.IRoutes) {
	group.GET("/todos", h.listAction)
	group.POST("/todos", h.createAction)
	group.PUT("/todos/:id", h.updateAction)
	group.DELETE("/todos/:id", h.deleteAction)
}

func (h *Todos) listAction(c *gin.Context) {
	const op = "server.Todos.listAction"
	log := h.log.WithField("operation", op)

	todos, err := h.todos.All(c.Request.Context())
	if err != nil {
		handleError(c, log, err)
		return
	}
	writeValue(c, http.StatusOK, keycase.Format(store.AsJSONList(todos), keycase.Camel))
}

func (h *Todos) createAction(c *gin.Context) {
	const op = "server.Todos.createAction"
	log := h.log.WithField("operation", op)

	attrs, ok := h.readAttributes(c, log)
	if !ok {
		return
	}
	todo, err := h.todos.Create(c.Request.Context(), attrs)
	if err != nil {
		handleError(c, log, err)
		return
	}
	log.WithField("id", todo.ID).Debug("todo created")
	writeValue(c, http.StatusCreated, keycase.FormatMapping(todo.AsJSON(), keycase.Camel))
}

func (h *Todos) updateAction(c *gin.Context) {
	const op = "server.Todos.updateAction"
	log := h.log.WithField("operation", op)

	id, ok := todoID(c)
	if !ok {
		return
	}
	attrs, ok := h.readAttributes(c, log)
	if !ok {
		return
	}
	todo, err := h.todos.Update(c.Request.Context(), id, attrs)
	if err != nil {
		handleError(c, log, err)
		return
	}
	writeValue(c, http.StatusOK, keycase.FormatMapping(todo.AsJSON(), keycase.Camel))
}

func (h *Todos) deleteAction(c *gin.Context) {
	const op = "server.Todos.deleteAction"
	log := h.log.WithField("operation", op)

	id, ok := todoID(c)
	if !ok {
		return
	}
	if err := h.todos.Destroy(c.Request.Context(), id); err != nil {
		handleError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// readAttributes decodes the body as a JSON object and converts its keys
// to snake_case. On failure it has already responded.
func (h *Todos) readAttributes(c *gin.Context, log *logrus.Entry) (jsonvalue.Mapping, bool) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		handleError(c, log, err)
		return jsonvalue.Mapping{}, false
	}
	m, err := jsonvalue.DecodeMapping(body)
	if err != nil {
		if h.logDecode {
			log.WithError(err).Debug("invalid request body")
		}
		writeMessage(c, http.StatusBadRequest, MsgInvalidJSON)
		return jsonvalue.Mapping{}, false
	}
	return keycase.FormatMapping(m, keycase.Snake), true
}

// todoID parses the :id parameter. Ids that cannot exist are answered
// with 404.
func todoID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		writeMessage(c, http.StatusNotFound, MsgNotFound)
		return 0, false
	}
	return uint(id), true
}
