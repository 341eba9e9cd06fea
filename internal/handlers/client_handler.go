package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/service-orders/internal/domain/client"
	"github.com/BruksfildServices01/service-orders/internal/httperr"
	"github.com/BruksfildServices01/service-orders/internal/httpresp"
	"github.com/BruksfildServices01/service-orders/internal/middleware"
	ucClient "github.com/BruksfildServices01/service-orders/internal/usecase/client"
)

type ClientHandler struct {
	create *ucClient.CreateClient
	get    *ucClient.GetClient
	list   *ucClient.ListClients
	update *ucClient.UpdateClient
	delete *ucClient.DeleteClient
}

func NewClientHandler(
	create *ucClient.CreateClient,
	get *ucClient.GetClient,
	list *ucClient.ListClients,
	update *ucClient.UpdateClient,
	del *ucClient.DeleteClient,
) *ClientHandler {
	return &ClientHandler{
		create: create,
		get:    get,
		list:   list,
		update: update,
		delete: del,
	}
}

// --------- Requests ---------

// ClientRequest is the body of create and update calls. An id in the body is
// ignored; ids come from the path.
type ClientRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// --------- Handlers ---------

func (h *ClientHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(ucClient.DefaultPageSize)))

	out, err := h.list.Execute(c.Request.Context(), ucClient.ListClientsInput{
		Query: strings.TrimSpace(c.Query("query")),
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Could not list clients.")
		return
	}

	httpresp.Page(c, out.Clients, out.Total, out.Page, out.Limit)
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	client, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "failed_to_get_client")
		return
	}

	httpresp.OK(c, client)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Request body is not valid JSON.")
		return
	}

	client, err := h.create.Execute(c.Request.Context(), actorFrom(c), ucClient.CreateClientInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		writeError(c, err, "failed_to_create_client")
		return
	}

	httpresp.Created(c, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Request body is not valid JSON.")
		return
	}

	client, err := h.update.Execute(c.Request.Context(), actorFrom(c), ucClient.UpdateClientInput{
		ID:    id,
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		writeError(c, err, "failed_to_update_client")
		return
	}

	httpresp.OK(c, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), actorFrom(c), id); err != nil {
		writeError(c, err, "failed_to_delete_client")
		return
	}

	httpresp.NoContent(c)
}

// --------- Helpers ---------

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Client id must be a positive integer.")
		return 0, false
	}
	return uint(id), true
}

func actorFrom(c *gin.Context) ucClient.Actor {
	var actor ucClient.Actor
	if v, ok := c.Get(middleware.ContextUserID); ok {
		if id, ok := v.(uint); ok {
			actor.UserID = &id
		}
	}
	actor.Role = c.GetString(middleware.ContextUserRole)
	actor.RequestID = c.GetString(middleware.ContextRequestID)
	return actor
}

func writeError(c *gin.Context, err error, fallbackCode string) {
	if vs, ok := domain.AsViolations(err); ok {
		httperr.Validation(c, vs)
		return
	}

	var be httperr.BusinessError
	if errors.As(err, &be) {
		switch be.Code {
		case ucClient.CodeClientNotFound:
			httperr.NotFound(c, be.Code, "Client not found.")
			return
		case ucClient.CodeInvalidEmailDomain:
			httperr.BadRequest(c, be.Code, "The email domain does not appear to be valid.")
			return
		}
	}

	httperr.Internal(c, fallbackCode, "Unexpected error.")
}
