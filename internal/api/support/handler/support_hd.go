package supportHandler

import (
	"EditorialAssistant/internal/api/support"
	contextPkg "EditorialAssistant/pkg/context"
	"EditorialAssistant/pkg/handlerUtil"
	"EditorialAssistant/pkg/log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *SupportHandler) OpenTicket(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing open ticket request")

	var req support.CreateTicketRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	ticket, err := h.supportService.OpenTicket(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "open_ticket")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, ticket)
	}
}

func (h *SupportHandler) GetTicket(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 5*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id := ctx.Params("id")

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"ticket_id":  id,
	}).Debug("Processing get ticket request")

	ticket, err := h.supportService.GetTicket(c, id)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_ticket")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, ticket)
	}
}
