package catalogHandler

import (
	contextPkg "EditorialAssistant/pkg/context"
	"EditorialAssistant/pkg/handlerUtil"
	"EditorialAssistant/pkg/log"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *CatalogHandler) GetBookDetails(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 5*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	title, err := url.QueryUnescape(ctx.Params("title"))
	if err != nil {
		title = ctx.Params("title")
	}

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"title":      title,
	}).Debug("Processing book details request")

	details, err := h.catalogService.GetBookDetails(c, title)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_book_details")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, details)
	}
}

func (h *CatalogHandler) FindStores(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 5*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	title, err := url.QueryUnescape(ctx.Params("title"))
	if err != nil {
		title = ctx.Params("title")
	}
	city := ctx.Query("city")

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"title":      title,
		"city":       city,
	}).Debug("Processing store lookup request")

	stores, err := h.catalogService.FindStores(c, title, city)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "find_stores")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, stores)
	}
}
