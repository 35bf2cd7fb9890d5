package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

// FuncTag converts a request into a loggable value
type FuncTag func(c *fiber.Ctx, d *data) interface{}

var funcTagMap = map[string]FuncTag{
	TagPid: func(c *fiber.Ctx, d *data) interface{} {
		return d.pid
	},
	TagIP: func(c *fiber.Ctx, d *data) interface{} {
		return c.IP()
	},
	TagIPs: func(c *fiber.Ctx, d *data) interface{} {
		return c.Get(fiber.HeaderXForwardedFor)
	},
	TagHost: func(c *fiber.Ctx, d *data) interface{} {
		return c.Hostname()
	},
	TagMethod: func(c *fiber.Ctx, d *data) interface{} {
		return c.Method()
	},
	TagPath: func(c *fiber.Ctx, d *data) interface{} {
		return c.Path()
	},
	TagURL: func(c *fiber.Ctx, d *data) interface{} {
		return c.OriginalURL()
	},
	TagUA: func(c *fiber.Ctx, d *data) interface{} {
		return c.Get(fiber.HeaderUserAgent)
	},
	TagLatency: func(c *fiber.Ctx, d *data) interface{} {
		return d.end.Sub(d.start).String()
	},
	TagStatus: func(c *fiber.Ctx, d *data) interface{} {
		return c.Response().StatusCode()
	},
	TagBody: func(c *fiber.Ctx, d *data) interface{} {
		return string(c.Body())
	},
	TagBytesSent: func(c *fiber.Ctx, d *data) interface{} {
		return len(c.Response().Body())
	},
	TagRoute: func(c *fiber.Ctx, d *data) interface{} {
		return c.Route().Path
	},
	TagResBody: func(c *fiber.Ctx, d *data) interface{} {
		return string(c.Response().Body())
	},
	TagQuery: func(c *fiber.Ctx, d *data) interface{} {
		return c.Request().URI().QueryArgs().String()
	},
	RequestID: func(c *fiber.Ctx, d *data) interface{} {
		return c.GetRespHeader(fiber.HeaderXRequestID)
	},
}

// getFuncTagMap picks tag functions enabled in config
func getFuncTagMap(cfg Config, d *data) map[string]FuncTag {
	ftm := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if fn, ok := funcTagMap[tag]; ok {
			ftm[tag] = fn
		}
	}
	return ftm
}
