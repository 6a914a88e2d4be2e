package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/davidmorac/asadero-pos/internal/adapter/api/dto"
	"github.com/davidmorac/asadero-pos/internal/adapter/repository"
	customerdomain "github.com/davidmorac/asadero-pos/internal/domain/customer"
	"github.com/davidmorac/asadero-pos/pkg/logger"
)

// CustomerController gestiona las peticiones relacionadas con clientes
type CustomerController struct {
	customerRepo customerdomain.Repository
	logger       logger.Logger
}

// NewCustomerController crea una nueva instancia de CustomerController
func NewCustomerController(customerRepo customerdomain.Repository, logger logger.Logger) *CustomerController {
	return &CustomerController{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// Create crea un nuevo cliente
// @Summary Crear cliente
// @Description Registra un nuevo cliente
// @Tags customers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param customer body dto.CustomerRequest true "Datos del cliente"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers [post]
func (c *CustomerController) Create(ctx *gin.Context) {
	var req dto.CustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	cust, err := customerdomain.NewCustomer(req.Name, req.Phone, req.Address, req.Email, req.Notes)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "error al crear el cliente", err.Error()))
		return
	}

	if err := c.customerRepo.Create(ctx, cust); err != nil {
		c.logger.Error("error al guardar el cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al guardar el cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCustomerResponse(cust))
}

// List lista todos los clientes
// @Summary Listar clientes
// @Description Devuelve todos los clientes registrados
// @Tags customers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} dto.CustomerResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers [get]
func (c *CustomerController) List(ctx *gin.Context) {
	customers, err := c.customerRepo.List(ctx)
	if err != nil {
		c.logger.Error("error al listar los clientes", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al listar los clientes", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerListResponse(customers))
}

// Get devuelve un cliente por su ID
// @Summary Buscar cliente
// @Description Devuelve un cliente por su ID
// @Tags customers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del cliente"
// @Success 200 {object} dto.CustomerResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{id} [get]
func (c *CustomerController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	cust, err := c.customerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente no encontrado", ""))
			return
		}
		c.logger.Error("error al buscar el cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al buscar el cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerResponse(cust))
}

// Update actualiza parcialmente un cliente existente
// @Summary Actualizar cliente
// @Description Actualiza los campos enviados del cliente; los ausentes se conservan
// @Tags customers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del cliente"
// @Param customer body dto.CustomerPatchRequest true "Campos a actualizar"
// @Success 200 {object} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{id} [patch]
func (c *CustomerController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.CustomerPatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	cust, err := c.customerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente no encontrado", ""))
			return
		}
		c.logger.Error("error al buscar el cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al buscar el cliente", err.Error()))
		return
	}

	name, phone, address, email, notes := cust.Name, cust.Phone, cust.Address, cust.Email, cust.Notes
	if req.Name != nil {
		name = *req.Name
	}
	if req.Phone != nil {
		phone = *req.Phone
	}
	if req.Address != nil {
		address = *req.Address
	}
	if req.Email != nil {
		email = *req.Email
	}
	if req.Notes != nil {
		notes = *req.Notes
	}

	if err := cust.Update(name, phone, address, email, notes); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "error al actualizar el cliente", err.Error()))
		return
	}

	if err := c.customerRepo.Update(ctx, cust); err != nil {
		c.logger.Error("error al guardar el cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al guardar el cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerResponse(cust))
}

// Delete elimina un cliente
// @Summary Eliminar cliente
// @Description Elimina un cliente por su ID
// @Tags customers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del cliente"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{id} [delete]
func (c *CustomerController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.customerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente no encontrado", ""))
			return
		}
		c.logger.Error("error al eliminar el cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al eliminar el cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("cliente eliminado", nil))
}
