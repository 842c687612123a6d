package router

import (
	"time"

	tg "github.com/digitalcpa/invitebot/core/telegram"
	"github.com/digitalcpa/invitebot/core/telegram/middleware"

	tele "gopkg.in/telebot.v4"
)

// Conversation defines the minimal interface for a conversation flow manager.
type Conversation interface {
	HandleText(c tele.Context) error
}

// MediaHandlers binds photo and document updates to their processors.
type MediaHandlers struct {
	Photo    tele.HandlerFunc
	Document tele.HandlerFunc
}

// TextRoutes builds handlers for text routing. Non-command text always goes
// to the conversation flow; unknown slash commands fall through to the
// registry lookup first.
func TextRoutes(conv Conversation, reg *tg.Registry) []tg.Route {
	handler := func(c tele.Context) error {
		start := time.Now()
		text := c.Text()

		if reg != nil {
			if key, cmd, ok := reg.LookupCommand(text); ok && cmd.Handler != nil {
				name := normalizeHandlerName(key)
				return handleWithSummary(c, name, start, func() error {
					return cmd.Handler(c)
				})
			}
		}

		if conv != nil {
			return handleWithSummary(c, "flow", start, func() error {
				return conv.HandleText(c)
			})
		}

		if reg != nil {
			if fb := reg.TextFallback(); fb != nil {
				return handleWithSummary(c, "fallback", start, func() error {
					return fb(c)
				})
			}
		}

		logHandlerSummary(c, "unknown_text", start, "skip", nil)
		return nil
	}

	return []tg.Route{
		{
			Endpoint: tele.OnText,
			Handler:  middleware.RecoverMiddleware(middleware.LoggerMiddleware(handler)),
		},
	}
}

// MediaRoutes builds handlers for photo and document updates.
func MediaRoutes(handlers MediaHandlers) []tg.Route {
	var routes []tg.Route
	if handlers.Photo != nil {
		photo := func(c tele.Context) error {
			start := time.Now()
			return handleWithSummary(c, "photo", start, func() error {
				return handlers.Photo(c)
			})
		}
		routes = append(routes, tg.Route{
			Endpoint: tele.OnPhoto,
			Handler:  middleware.RecoverMiddleware(middleware.LoggerMiddleware(photo)),
		})
	}
	if handlers.Document != nil {
		doc := func(c tele.Context) error {
			start := time.Now()
			return handleWithSummary(c, "document", start, func() error {
				return handlers.Document(c)
			})
		}
		routes = append(routes, tg.Route{
			Endpoint: tele.OnDocument,
			Handler:  middleware.RecoverMiddleware(middleware.LoggerMiddleware(doc)),
		})
	}
	return routes
}
