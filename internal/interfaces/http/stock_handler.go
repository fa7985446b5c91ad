package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/drone-inventory/internal/application/dto"
	"github.com/jhoicas/drone-inventory/internal/application/usecase"
)

// exportFileTimeLayout marca de tiempo del nombre del PDF exportado.
const exportFileTimeLayout = "20060102_150405"

// StockHandler maneja las peticiones HTTP de artículos de stock (protegido).
type StockHandler struct {
	uc *usecase.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *usecase.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// List godoc
// @Summary      Listar artículos activos
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockListResponse
// @Router       /api/stocks [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.StockListResponse{Items: out})
}

// Options godoc
// @Summary      Categorías y centros seleccionables
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockOptionsResponse
// @Router       /api/stocks/options [get]
func (h *StockHandler) Options(c *fiber.Ctx) error {
	out, err := h.uc.Options(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar artículos
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Param        categoryId       query  int     false  "ID de categoría"
// @Param        name             query  string  false  "Subcadena del nombre"
// @Param        amount           query  int     false  "Cantidad de referencia"
// @Param        amountCondition  query  string  false  "greater (>=) | less (<=)"
// @Param        description      query  string  false  "Solo se valida, no filtra"
// @Success      200  {object}  dto.StockListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stocks/search [get]
func (h *StockHandler) Search(c *fiber.Ctx) error {
	form, err := stockSearchForm(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Search(c.UserContext(), form)
	if err != nil {
		return respondError(c, err)
	}
	resp := dto.StockListResponse{Items: out}
	if len(out) == 0 {
		resp.Message = dto.NoResultsMessage
	}
	return c.JSON(resp)
}

// Export godoc
// @Summary      Exportar artículos a PDF
// @Description  Acepta los mismos filtros que /search; sin filtros exporta todos los activos.
// @Tags         stocks
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stocks/export [get]
func (h *StockHandler) Export(c *fiber.Ctx) error {
	var form *dto.StockSearchForm
	if len(c.Request().URI().QueryArgs().QueryString()) > 0 {
		f, err := stockSearchForm(c)
		if err != nil {
			return respondError(c, err)
		}
		form = &f
	}
	out, err := h.uc.ExportPDF(c.UserContext(), form)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="stock_%s.pdf"`, time.Now().Format(exportFileTimeLayout)))
	return c.Send(out)
}

// GetByID godoc
// @Summary      Obtener artículo por ID
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del artículo"
// @Success      200  {object}  dto.StockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stocks/{id} [get]
func (h *StockHandler) GetByID(c *fiber.Ctx) error {
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

// Create godoc
// @Summary      Crear artículo
// @Tags         stocks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockForm  true  "Datos del artículo"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stocks [post]
func (h *StockHandler) Create(c *fiber.Ctx) error {
	var in dto.StockForm
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	id, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{ID: id})
}

// Update godoc
// @Summary      Editar o borrar lógicamente un artículo
// @Tags         stocks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int            true  "ID del artículo"
// @Param        body  body  dto.StockForm  true  "delete_flag=true borra; si no, reemplaza los campos"
// @Success      200   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stocks/{id} [patch]
func (h *StockHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.StockForm
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	in.ID = &id
	out, err := h.uc.Update(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func stockSearchForm(c *fiber.Ctx) (dto.StockSearchForm, error) {
	categoryID, err := queryInt64(c, "categoryId")
	if err != nil {
		return dto.StockSearchForm{}, err
	}
	amount, err := queryInt(c, "amount")
	if err != nil {
		return dto.StockSearchForm{}, err
	}
	return dto.StockSearchForm{
		CategoryID:      categoryID,
		Name:            c.Query("name"),
		Amount:          amount,
		AmountCondition: c.Query("amountCondition"),
		Description:     c.Query("description"),
	}, nil
}
