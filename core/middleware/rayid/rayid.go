package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName carries the ray id on responses (and optionally requests).
const HeaderName = "X-Ray-Id"

// LocalsKey is the fiber locals key the logger helper reads.
const LocalsKey = "ray_id"

// New returns middleware that assigns every request a ray id. A caller may
// supply its own via the header; otherwise a fresh UUID is generated.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
