package handlers

import (
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func authenticatedUserID(c *fiber.Ctx) uuid.UUID {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))
	return userID
}

func authenticatedRole(c *fiber.Ctx) string {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	role, _ := claims["role"].(string)
	return role
}

func parsePagination(c *fiber.Ctx) (page, limit, offset int) {
	page, _ = strconv.Atoi(c.Query("page", "1"))
	limit, _ = strconv.Atoi(c.Query("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit, (page - 1) * limit
}

// paginatedResponse builds the list envelope used across the API.
func paginatedResponse(data interface{}, count int, total int64, page, limit int) fiber.Map {
	return fiber.Map{
		"success":     true,
		"count":       count,
		"total":       total,
		"totalPages":  int(math.Ceil(float64(total) / float64(limit))),
		"currentPage": page,
		"data":        data,
	}
}
