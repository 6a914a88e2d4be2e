package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/davidmorac/asadero-pos/internal/adapter/api/dto"
	"github.com/davidmorac/asadero-pos/internal/adapter/repository"
	saledomain "github.com/davidmorac/asadero-pos/internal/domain/sale"
	"github.com/davidmorac/asadero-pos/internal/service"
	"github.com/davidmorac/asadero-pos/pkg/logger"
)

// SaleController gestiona las peticiones relacionadas con ventas
type SaleController struct {
	saleService *service.SaleService
	logger      logger.Logger
}

// NewSaleController crea una nueva instancia de SaleController
func NewSaleController(saleService *service.SaleService, logger logger.Logger) *SaleController {
	return &SaleController{
		saleService: saleService,
		logger:      logger,
	}
}

// Create registra una nueva venta
// @Summary Registrar venta
// @Description Registra una venta validando el cliente y los productos referenciados
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param sale body dto.SaleRequest true "Datos de la venta"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [post]
func (c *SaleController) Create(ctx *gin.Context) {
	var req dto.SaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	v, err := saledomain.NewSale(dto.ToSaleItems(req.Products), req.Total, req.Customer, *req.IsDebt, req.DebtAmount, req.DebtDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "error al crear la venta", err.Error()))
		return
	}

	v, err = c.saleService.RecordSale(ctx, v)
	if err != nil {
		c.respondSaleError(ctx, "error al registrar la venta", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSaleResponse(v))
}

// List lista todas las ventas
// @Summary Listar ventas
// @Description Devuelve todas las ventas registradas
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} dto.SaleResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [get]
func (c *SaleController) List(ctx *gin.Context) {
	sales, err := c.saleService.FindAll(ctx)
	if err != nil {
		c.logger.Error("error al listar las ventas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al listar las ventas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(sales))
}

// Today lista las ventas del día actual
// @Summary Ventas de hoy
// @Description Devuelve las ventas registradas durante el día actual en hora local
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} dto.SaleResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/today [get]
func (c *SaleController) Today(ctx *gin.Context) {
	sales, err := c.saleService.FindToday(ctx)
	if err != nil {
		c.logger.Error("error al listar las ventas de hoy", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al listar las ventas de hoy", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(sales))
}

// Debts lista las ventas fiadas pendientes
// @Summary Listar fiados
// @Description Devuelve las ventas marcadas como deuda pendiente
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} dto.SaleResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/debts [get]
func (c *SaleController) Debts(ctx *gin.Context) {
	sales, err := c.saleService.FindDebts(ctx)
	if err != nil {
		c.logger.Error("error al listar los fiados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al listar los fiados", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(sales))
}

// ByCustomer lista las ventas de un cliente
// @Summary Ventas por cliente
// @Description Devuelve las ventas registradas a nombre de un cliente
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del cliente"
// @Success 200 {array} dto.SaleResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/customer/{id} [get]
func (c *SaleController) ByCustomer(ctx *gin.Context) {
	customerID := ctx.Param("id")

	sales, err := c.saleService.FindByCustomer(ctx, customerID)
	if err != nil {
		c.respondSaleError(ctx, "error al listar las ventas del cliente", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(sales))
}

// Get devuelve una venta por su ID
// @Summary Buscar venta
// @Description Devuelve una venta por su ID
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID de la venta"
// @Success 200 {object} dto.SaleResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id} [get]
func (c *SaleController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	v, err := c.saleService.FindOne(ctx, id)
	if err != nil {
		c.respondSaleError(ctx, "error al buscar la venta", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(v))
}

// Update aplica una actualización parcial sobre una venta
// @Summary Actualizar venta
// @Description Actualiza parcialmente una venta, por ejemplo para saldar un fiado
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID de la venta"
// @Param sale body dto.SalePatchRequest true "Campos a actualizar"
// @Success 200 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id} [patch]
func (c *SaleController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.SalePatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	patch := saledomain.Patch{
		Total:      req.Total,
		CustomerID: req.Customer,
		IsDebt:     req.IsDebt,
		DebtAmount: req.DebtAmount,
		DebtDate:   req.DebtDate,
	}
	if req.Products != nil {
		patch.Items = dto.ToSaleItems(req.Products)
	}

	v, err := c.saleService.Update(ctx, id, patch)
	if err != nil {
		c.respondSaleError(ctx, "error al actualizar la venta", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(v))
}

// Delete elimina una venta
// @Summary Eliminar venta
// @Description Elimina una venta por su ID
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID de la venta"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id} [delete]
func (c *SaleController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.saleService.Delete(ctx, id); err != nil {
		c.respondSaleError(ctx, "error al eliminar la venta", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("venta eliminada", nil))
}

// respondSaleError traduce los errores del servicio de ventas al código
// HTTP correspondiente: referencias inexistentes son 404, errores de
// validación del dominio son 400 y el resto 500.
func (c *SaleController) respondSaleError(ctx *gin.Context, message string, err error) {
	switch {
	case errors.Is(err, repository.ErrSaleNotFound),
		errors.Is(err, repository.ErrCustomerNotFound),
		errors.Is(err, repository.ErrProductNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, message, err.Error()))
	case errors.Is(err, saledomain.ErrNoItems),
		errors.Is(err, saledomain.ErrInvalidQuantity),
		errors.Is(err, saledomain.ErrNegativeTotal),
		errors.Is(err, saledomain.ErrEmptyCustomer),
		errors.Is(err, saledomain.ErrNegativeDebt):
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, message, err.Error()))
	default:
		c.logger.Error(message, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, message, err.Error()))
	}
}
