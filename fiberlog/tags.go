package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	TagStatus  = "status"
	TagLatency = "latency"
	TagMethod  = "method"
	TagPath    = "path"
	TagBody    = "body"
	TagResBody = "res_body"
	RequestID  = "request_id"
)

type data struct {
	start time.Time
	end   time.Time
}

// FuncTag вычисляет значение поля лога для запроса
type FuncTag func(c *fiber.Ctx, d *data) interface{}

var funcTagMap = map[string]FuncTag{
	TagStatus: func(c *fiber.Ctx, d *data) interface{} {
		return c.Response().StatusCode()
	},
	TagLatency: func(c *fiber.Ctx, d *data) interface{} {
		return d.end.Sub(d.start).String()
	},
	TagMethod: func(c *fiber.Ctx, d *data) interface{} {
		return c.Method()
	},
	TagPath: func(c *fiber.Ctx, d *data) interface{} {
		return c.Path()
	},
	TagBody: func(c *fiber.Ctx, d *data) interface{} {
		return string(c.Body())
	},
	TagResBody: func(c *fiber.Ctx, d *data) interface{} {
		return string(c.Response().Body())
	},
	RequestID: func(c *fiber.Ctx, d *data) interface{} {
		return c.Get(fiber.HeaderXRequestID)
	},
}

func getFuncTagMap(cfg Config, d *data) map[string]FuncTag {
	ftm := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, exist := funcTagMap[tag]; exist {
			ftm[tag] = ft
		}
	}
	return ftm
}
