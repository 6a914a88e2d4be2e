package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/davidmorac/asadero-pos/internal/adapter/api/dto"
	"github.com/davidmorac/asadero-pos/internal/adapter/repository"
	expensedomain "github.com/davidmorac/asadero-pos/internal/domain/expense"
	"github.com/davidmorac/asadero-pos/pkg/logger"
)

// ExpenseController gestiona las peticiones relacionadas con gastos
type ExpenseController struct {
	expenseRepo expensedomain.Repository
	logger      logger.Logger
}

// NewExpenseController crea una nueva instancia de ExpenseController
func NewExpenseController(expenseRepo expensedomain.Repository, logger logger.Logger) *ExpenseController {
	return &ExpenseController{
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

// Create crea un nuevo gasto
// @Summary Crear gasto
// @Description Registra un gasto del negocio
// @Tags expenses
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param expense body dto.ExpenseRequest true "Datos del gasto"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /expenses [post]
func (c *ExpenseController) Create(ctx *gin.Context) {
	var req dto.ExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	e, err := expensedomain.NewExpense(req.Description, expensedomain.Category(req.Category), req.Amount, req.Date, req.Notes)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "error al crear el gasto", err.Error()))
		return
	}

	if err := c.expenseRepo.Create(ctx, e); err != nil {
		c.logger.Error("error al guardar el gasto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al guardar el gasto", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(e))
}

// List lista todos los gastos
// @Summary Listar gastos
// @Description Devuelve todos los gastos registrados
// @Tags expenses
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} dto.ExpenseResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /expenses [get]
func (c *ExpenseController) List(ctx *gin.Context) {
	expenses, err := c.expenseRepo.List(ctx)
	if err != nil {
		c.logger.Error("error al listar los gastos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al listar los gastos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(expenses))
}

// Today lista los gastos del día actual en UTC
// @Summary Gastos de hoy
// @Description Devuelve los gastos cuya fecha cae dentro del día actual en UTC
// @Tags expenses
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} dto.ExpenseResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /expenses/today/list [get]
func (c *ExpenseController) Today(ctx *gin.Context) {
	from, to := expensedomain.TodayRangeUTC(time.Now())

	expenses, err := c.expenseRepo.FindByDateRange(ctx, from, to, false)
	if err != nil {
		c.logger.Error("error al listar los gastos de hoy", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al listar los gastos de hoy", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(expenses))
}

// ByDateRange lista los gastos dentro de un rango de fechas
// @Summary Gastos por rango de fechas
// @Description Devuelve los gastos entre startDate y endDate, ambos inclusive
// @Tags expenses
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param startDate query string true "Fecha inicial (2006-01-02)"
// @Param endDate query string true "Fecha final (2006-01-02)"
// @Success 200 {array} dto.ExpenseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /expenses/range/list [get]
func (c *ExpenseController) ByDateRange(ctx *gin.Context) {
	startDate := ctx.Query("startDate")
	endDate := ctx.Query("endDate")
	if startDate == "" || endDate == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "startDate y endDate son requeridos", ""))
		return
	}

	from, to, err := expensedomain.DayRange(startDate, endDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "fechas inválidas", err.Error()))
		return
	}

	expenses, err := c.expenseRepo.FindByDateRange(ctx, from, to, true)
	if err != nil {
		c.logger.Error("error al listar los gastos por rango", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al listar los gastos por rango", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(expenses))
}

// Total devuelve el total acumulado de todos los gastos
// @Summary Total de gastos
// @Description Devuelve la suma de todos los gastos registrados
// @Tags expenses
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.ExpenseTotalResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /expenses/stats/total [get]
func (c *ExpenseController) Total(ctx *gin.Context) {
	total, err := c.expenseRepo.TotalAmount(ctx)
	if err != nil {
		c.logger.Error("error al calcular el total de gastos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al calcular el total de gastos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ExpenseTotalResponse{Total: total})
}

// TotalByCategory devuelve el total de gastos agrupado por categoría
// @Summary Gastos por categoría
// @Description Devuelve la suma de gastos agrupada por categoría
// @Tags expenses
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} dto.CategoryTotalResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /expenses/stats/by-category [get]
func (c *ExpenseController) TotalByCategory(ctx *gin.Context) {
	totals, err := c.expenseRepo.TotalByCategory(ctx)
	if err != nil {
		c.logger.Error("error al agrupar los gastos por categoría", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al agrupar los gastos por categoría", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryTotalResponse(totals))
}

// Get devuelve un gasto por su ID
// @Summary Buscar gasto
// @Description Devuelve un gasto por su ID
// @Tags expenses
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del gasto"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /expenses/{id} [get]
func (c *ExpenseController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	e, err := c.expenseRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "gasto no encontrado", ""))
			return
		}
		c.logger.Error("error al buscar el gasto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al buscar el gasto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(e))
}

// Update actualiza parcialmente un gasto existente
// @Summary Actualizar gasto
// @Description Actualiza los campos enviados del gasto; los ausentes se conservan
// @Tags expenses
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del gasto"
// @Param expense body dto.ExpensePatchRequest true "Campos a actualizar"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /expenses/{id} [patch]
func (c *ExpenseController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.ExpensePatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	e, err := c.expenseRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "gasto no encontrado", ""))
			return
		}
		c.logger.Error("error al buscar el gasto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al buscar el gasto", err.Error()))
		return
	}

	description, category, amount, date, notes := e.Description, e.Category, e.Amount, e.Date, e.Notes
	if req.Description != nil {
		description = *req.Description
	}
	if req.Category != nil {
		category = expensedomain.Category(*req.Category)
	}
	if req.Amount != nil {
		amount = *req.Amount
	}
	if req.Date != nil {
		date = *req.Date
	}
	if req.Notes != nil {
		notes = *req.Notes
	}

	if err := e.Update(description, category, amount, date, notes); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "error al actualizar el gasto", err.Error()))
		return
	}

	if err := c.expenseRepo.Update(ctx, e); err != nil {
		c.logger.Error("error al guardar el gasto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al guardar el gasto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(e))
}

// Delete elimina un gasto
// @Summary Eliminar gasto
// @Description Elimina un gasto por su ID
// @Tags expenses
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del gasto"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /expenses/{id} [delete]
func (c *ExpenseController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.expenseRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "gasto no encontrado", ""))
			return
		}
		c.logger.Error("error al eliminar el gasto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al eliminar el gasto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("gasto eliminado", nil))
}
