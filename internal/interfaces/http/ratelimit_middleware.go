package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kalitech/magasin-api/internal/application/dto"
	"github.com/kalitech/magasin-api/internal/infrastructure/redis"
)

// RateLimiter limite le nombre de requêtes par IP sur une fenêtre glissante d'une
// minute, compteur en Redis. En cas d'indisponibilité de Redis la requête passe :
// le limiteur protège l'API, il ne doit pas la rendre indisponible.
func RateLimiter(client redis.Client, limit int) fiber.Handler {
	const window = time.Minute
	return func(c *fiber.Ctx) error {
		key := "rate-limit:" + c.IP()
		ctx := c.Context()

		count, err := client.GetInt(ctx, key)
		if err == redis.ErrCacheMiss {
			if err := client.Set(ctx, key, 1, window); err != nil {
				return c.Next()
			}
			c.Set("X-RateLimit-Remaining", strconv.Itoa(limit-1))
			return c.Next()
		}
		if err != nil {
			return c.Next()
		}

		if count >= limit {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Code: "RATE_LIMIT", Message: "trop de requêtes, réessayer plus tard"})
		}

		_ = client.Incr(ctx, key)
		c.Set("X-RateLimit-Remaining", strconv.Itoa(limit-count-1))
		return c.Next()
	}
}
