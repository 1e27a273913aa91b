package resource

import (
	"bytes"
	"context"
	"encoding/json"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/pkg/errors"
	"github.com/jwalitptl/clinic-api/pkg/httputil"
)

// Service is what a resource handler needs from the service layer.
type Service[Req any, R any] interface {
	Create(ctx context.Context, req Req) (int64, error)
	List(ctx context.Context) ([]R, error)
	Update(ctx context.Context, id string, req Req) (model.Result, error)
	Delete(ctx context.Context, id string) (model.Result, error)
}

// Routes are the four paths of one resource. Update and Delete carry an :id
// parameter.
type Routes struct {
	Create string
	List   string
	Update string
	Delete string
}

// DefaultRoutes follows the clinic URL scheme: /add-x, /xs, /xs/:id and
// /delete-x/:id.
func DefaultRoutes(singular, plural string) Routes {
	return Routes{
		Create: "/add-" + singular,
		List:   "/" + plural,
		Update: "/" + plural + "/:id",
		Delete: "/delete-" + singular + "/:id",
	}
}

type Handler[Req any, R any] struct {
	service Service[Req, R]
	routes  Routes
}

func NewHandler[Req any, R any](service Service[Req, R], routes Routes) *Handler[Req, R] {
	return &Handler[Req, R]{service: service, routes: routes}
}

func (h *Handler[Req, R]) RegisterRoutes(r gin.IRoutes) {
	r.POST(h.routes.Create, h.Create)
	r.GET(h.routes.List, h.List)
	r.PUT(h.routes.Update, h.Update)
	r.DELETE(h.routes.Delete, h.Delete)
}

func (h *Handler[Req, R]) Create(c *gin.Context) {
	req, err := bindBody[Req](c)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	id, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithCreated(c, id)
}

func (h *Handler[Req, R]) List(c *gin.Context) {
	rows, err := h.service.List(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	if rows == nil {
		rows = []R{}
	}

	httputil.RespondWithData(c, rows)
}

func (h *Handler[Req, R]) Update(c *gin.Context) {
	req, err := bindBody[Req](c)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	result, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithData(c, result)
}

func (h *Handler[Req, R]) Delete(c *gin.Context) {
	result, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithData(c, result)
}

// bindBody decodes the JSON body into Req. An empty body decodes as {}.
// Keys must match a json tag exactly; PAT_ID does not bind pat_id.
func bindBody[Req any](c *gin.Context) (Req, error) {
	var req Req

	raw, err := c.GetRawData()
	if err != nil {
		return req, errors.BadRequest(err)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return req, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return req, errors.BadRequest(err)
	}

	known := jsonKeys(reflect.TypeOf(req))
	for key := range fields {
		if !known[key] {
			delete(fields, key)
		}
	}

	exact, err := json.Marshal(fields)
	if err != nil {
		return req, errors.BadRequest(err)
	}
	if err := json.Unmarshal(exact, &req); err != nil {
		return req, errors.BadRequest(err)
	}
	return req, nil
}

var keyCache sync.Map // reflect.Type -> map[string]bool

// jsonKeys lists the json names of t's exported fields.
func jsonKeys(t reflect.Type) map[string]bool {
	if keys, ok := keyCache.Load(t); ok {
		return keys.(map[string]bool)
	}

	keys := make(map[string]bool)
	st := t
	if st.Kind() == reflect.Pointer {
		st = st.Elem()
	}
	if st.Kind() == reflect.Struct {
		for i := 0; i < st.NumField(); i++ {
			f := st.Field(i)
			if !f.IsExported() {
				continue
			}
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				continue
			}
			if name == "" {
				name = f.Name
			}
			keys[name] = true
		}
	}

	keyCache.Store(t, keys)
	return keys
}
