package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/careslot/careslot-backend/internal/dto"
	"github.com/careslot/careslot-backend/internal/middleware"
	"github.com/careslot/careslot-backend/internal/services"
)

type AppointmentHandler struct {
	apptService *services.AppointmentService
}

func NewAppointmentHandler(apptService *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{apptService: apptService}
}

// Create handles POST /appointment/ - books an appointment for the acting patient.
func (h *AppointmentHandler) Create(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Message: "unauthorized",
		})
	}

	var req dto.CreateAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "invalid request body",
		})
	}

	appt, err := h.apptService.Book(c.Context(), services.Actor(user), &req)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"appointment": dto.NewAppointmentResponse(appt),
	})
}

// ListAll handles GET /appointment/ - every appointment, admin only.
func (h *AppointmentHandler) ListAll(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Message: "unauthorized",
		})
	}

	appts, err := h.apptService.ListAll(c.Context(), services.Actor(user))
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(dto.NewAppointmentListResponse(appts))
}

// ListForDoctor handles GET /appointment/doctor - the acting doctor's appointments.
func (h *AppointmentHandler) ListForDoctor(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Message: "unauthorized",
		})
	}

	appts, err := h.apptService.ListForDoctor(c.Context(), services.Actor(user))
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(dto.NewAppointmentListResponse(appts))
}

// ListForPatient handles GET /appointment/patient - the acting patient's appointments.
func (h *AppointmentHandler) ListForPatient(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Message: "unauthorized",
		})
	}

	appts, err := h.apptService.ListForPatient(c.Context(), services.Actor(user))
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(dto.NewAppointmentListResponse(appts))
}

// Update handles PUT /appointment/:id - status change by the owning doctor or an admin.
func (h *AppointmentHandler) Update(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Message: "unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Message: "appointment not found",
		})
	}

	var req dto.UpdateAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "invalid request body",
		})
	}

	appt, err := h.apptService.UpdateStatus(c.Context(), services.Actor(user), id, req.Status)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(fiber.Map{"appointment": dto.NewAppointmentResponse(appt)})
}

// Delete handles DELETE /appointment/:id - cancel by the owning patient or an admin.
func (h *AppointmentHandler) Delete(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Message: "unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Message: "appointment not found",
		})
	}

	if err := h.apptService.Cancel(c.Context(), services.Actor(user), id); err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(dto.MessageResponse{Message: "appointment canceled"})
}

func (h *AppointmentHandler) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Message: err.Error(),
		})
	case errors.Is(err, services.ErrDoctorNotFound), errors.Is(err, services.ErrAppointmentNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Message: err.Error(),
		})
	case errors.Is(err, services.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Message: "internal server error",
			Error:   err.Error(),
		})
	}
}
