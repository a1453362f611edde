package middleware

import (
	"movieclub_api/pkg/response"
	"movieclub_api/util"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func AuthMiddleware(c *fiber.Ctx) error {
	accessToken := c.Get("Authorization", "")
	if accessToken == "" {
		return response.ResponseError(c, "Unauthorized, accessToken not provided", fiber.StatusUnauthorized)
	}

	strArr := strings.Split(accessToken, " ")
	if len(strArr) == 2 && strings.EqualFold(strArr[0], "bearer") {
		accessToken = strArr[1]
	} else {
		return response.ResponseError(c, "Unauthorized, Invalid accessToken", fiber.StatusUnauthorized)
	}

	token, claims, err := util.VerifyToken(accessToken)
	if err != nil {
		return response.ResponseError(c, "Unauthorized, Invalid accessToken", fiber.StatusUnauthorized)
	}
	if token == nil || claims == nil || claims.Username == "" {
		return response.ResponseError(c, "Unauthorized, Invalid accessToken metaData", fiber.StatusUnauthorized)
	}

	c.Locals("accessToken", accessToken)
	c.Locals("jwtUserData", claims)
	return c.Next()
}

var (
	LocalhostRegex = regexp.MustCompile(`(?i)^(https?://)?localhost(:\d{4})?$`)
)
