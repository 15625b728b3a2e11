// Package handler contains the HTTP handlers for the application.
package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "clientes/internal/delivery/context"
	"clientes/internal/delivery/http/response"
	"clientes/internal/domain/entity"
	domainerrors "clientes/internal/domain/errors"
	"clientes/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	msgCreated  = "El cliente ha sido creado con éxito!"
	msgUpdated  = "El cliente ha sido actualizado con éxito!"
	msgDeleted  = "El cliente eliminado con éxito!"
	msgUploaded = "Has subido correctamente la imagen: %s"

	formFieldFile = "archivo"
	formFieldID   = "id"
)

// CustomerHandler holds dependencies for customer-related handlers.
type CustomerHandler struct {
	uc     usecase.CustomerUsecase
	logger *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler, injected by Fx.
func NewCustomerHandler(uc usecase.CustomerUsecase, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns every customer.
func (h *CustomerHandler) List(c echo.Context) error {
	customers, err := h.uc.ListCustomers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, http.StatusOK, customers)
}

// ListPage returns one page of customers.
func (h *CustomerHandler) ListPage(c echo.Context) error {
	page, err := strconv.Atoi(c.Param("page"))
	if err != nil {
		return domainerrors.ErrInvalidParameter.WithMessage("El número de página %q no es válido", c.Param("page"))
	}

	result, err := h.uc.ListCustomersPage(c.Request().Context(), page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, http.StatusOK, result)
}

// Show returns a single customer.
func (h *CustomerHandler) Show(c echo.Context) error {
	id, err := customerID(c.Param("id"))
	if err != nil {
		return err
	}

	customer, err := h.uc.GetCustomer(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, http.StatusOK, customer)
}

// Create persists a new customer.
func (h *CustomerHandler) Create(c echo.Context) error {
	input, err := bindCustomer(c)
	if err != nil {
		return err
	}

	created, err := h.uc.CreateCustomer(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Customer(c, http.StatusCreated, msgCreated, created)
}

// Update replaces the editable fields of a customer.
func (h *CustomerHandler) Update(c echo.Context) error {
	id, err := customerID(c.Param("id"))
	if err != nil {
		return err
	}

	input, err := bindCustomer(c)
	if err != nil {
		return err
	}

	updated, err := h.uc.UpdateCustomer(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Customer(c, http.StatusCreated, msgUpdated, updated)
}

// Delete removes a customer and its photo.
func (h *CustomerHandler) Delete(c echo.Context) error {
	id, err := customerID(c.Param("id"))
	if err != nil {
		return err
	}

	if err := h.uc.DeleteCustomer(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Mensaje(c, http.StatusOK, msgDeleted)
}

// Upload stores the multipart "archivo" as the photo of customer "id".
// An absent or empty file is a no-op answered with an empty object.
func (h *CustomerHandler) Upload(c echo.Context) error {
	file, err := c.FormFile(formFieldFile)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return response.OK(c, http.StatusCreated, struct{}{})
		}

		return domainerrors.ErrInvalidParameter.WithMessage("El formulario multipart no es válido")
	}
	if file.Size == 0 {
		return response.OK(c, http.StatusCreated, struct{}{})
	}

	id, err := customerID(c.FormValue(formFieldID))
	if err != nil {
		return err
	}

	src, err := file.Open()
	if err != nil {
		return domainerrors.NewStoreError(err, "Error al subir la imagen del cliente "+file.Filename)
	}
	defer func() {
		if cerr := src.Close(); cerr != nil {
			h.logger.Warn("Failed to close uploaded file", slog.Any("error", cerr))
		}
	}()

	customer, err := h.uc.UploadPhoto(c.Request().Context(), id, &usecase.PhotoUpload{
		Filename: file.Filename,
		Size:     file.Size,
		Content:  src,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Customer(c, http.StatusCreated, fmt.Sprintf(msgUploaded, customer.Photo), customer)
}

// ServePhoto streams a stored photo as an attachment.
func (h *CustomerHandler) ServePhoto(c echo.Context) error {
	ctx := c.Request().Context()

	resource, err := h.uc.LoadPhoto(ctx, c.Param("nombreFoto"))
	if err != nil {
		return errors.WithStack(err)
	}
	defer func() {
		if cerr := resource.Body.Close(); cerr != nil {
			deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Failed to close photo", slog.Any("error", cerr))
		}
	}()

	contentType := resource.ContentType
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}

	header := c.Response().Header()
	header.Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", resource.Filename))
	if resource.Size > 0 {
		header.Set(echo.HeaderContentLength, strconv.FormatInt(resource.Size, 10))
	}

	return c.Stream(http.StatusOK, contentType, resource.Body)
}

// ListRegions returns the region reference data.
func (h *CustomerHandler) ListRegions(c echo.Context) error {
	regions, err := h.uc.ListRegions(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, http.StatusOK, regions)
}

func customerID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrInvalidParameter.WithMessage("El id de cliente %q no es válido", raw)
	}

	return id, nil
}

func bindCustomer(c echo.Context) (*entity.Customer, error) {
	input := new(entity.Customer)
	if err := (&echo.DefaultBinder{}).BindBody(c, input); err != nil {
		return nil, domainerrors.ErrInvalidParameter.WithMessage("Cuerpo de la petición inválido")
	}

	return input, nil
}
