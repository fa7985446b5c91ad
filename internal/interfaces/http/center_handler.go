package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/drone-inventory/internal/application/dto"
	"github.com/jhoicas/drone-inventory/internal/application/usecase"
)

// CenterHandler consultas de centros de almacenamiento (protegido, solo lectura).
type CenterHandler struct {
	uc *usecase.StorageCenterUseCase
}

// NewCenterHandler construye el handler.
func NewCenterHandler(uc *usecase.StorageCenterUseCase) *CenterHandler {
	return &CenterHandler{uc: uc}
}

// List godoc
// @Summary      Listar todos los centros
// @Tags         centers
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CenterListResponse
// @Router       /api/centers [get]
func (h *CenterHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.CenterListResponse{Items: out})
}

// Search godoc
// @Summary      Buscar centros
// @Description  Al menos un filtro es obligatorio. La región debe ser una prefectura conocida.
// @Tags         centers
// @Security     Bearer
// @Produce      json
// @Param        name          query  string  false  "Subcadena del nombre"
// @Param        region        query  string  false  "Subcadena de la región"
// @Param        capacityFrom  query  int     false  "Capacidad mínima"
// @Param        capacityTo    query  int     false  "Capacidad máxima"
// @Success      200  {object}  dto.CenterListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/centers/search [get]
func (h *CenterHandler) Search(c *fiber.Ctx) error {
	from, err := queryInt(c, "capacityFrom")
	if err != nil {
		return respondError(c, err)
	}
	to, err := queryInt(c, "capacityTo")
	if err != nil {
		return respondError(c, err)
	}
	form := dto.CenterSearchForm{
		Name:         c.Query("name"),
		Region:       c.Query("region"),
		CapacityFrom: from,
		CapacityTo:   to,
	}
	out, err := h.uc.Search(c.UserContext(), form)
	if err != nil {
		return respondError(c, err)
	}
	resp := dto.CenterListResponse{Items: out}
	if len(out) == 0 {
		resp.Message = dto.NoResultsMessage
	}
	return c.JSON(resp)
}

// GetByID godoc
// @Summary      Obtener centro por ID
// @Tags         centers
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del centro"
// @Success      200  {object}  dto.CenterResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/centers/{id} [get]
func (h *CenterHandler) GetByID(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
