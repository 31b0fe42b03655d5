package handler

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"jediarchives/internal/service"
)

// pathID returns the unescaped :id parameter. Relay ids are base64 and may
// arrive with '/', '+' or '=' percent-encoded.
func pathID(c *fiber.Ctx) (string, bool) {
	id, err := url.PathUnescape(c.Params("id"))
	if err != nil || id == "" {
		return "", false
	}
	return id, true
}

// Films serves the film list screen.
//
// @Summary Film list screen
// @Tags screens
// @Produce json
// @Success 200 {object} model.Screen
// @Failure 502 {object} errorPayload
// @Router /films [get]
func Films(svc service.ScreenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		screen, err := svc.Films(c.UserContext())
		if err != nil {
			return writeServiceError(c, err, "films not found")
		}
		return c.JSON(screen)
	}
}

// FilmDetail serves the detail screen of one film.
//
// @Summary Film detail screen
// @Tags screens
// @Produce json
// @Param id path string true "Relay id of the film"
// @Success 200 {object} model.Screen
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 502 {object} errorPayload
// @Router /films/{id} [get]
func FilmDetail(svc service.ScreenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		screen, err := svc.FilmDetail(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err, "film not found")
		}
		return c.JSON(screen)
	}
}

// CharacterDetail serves the detail screen of one character.
//
// @Summary Character detail screen
// @Tags screens
// @Produce json
// @Param id path string true "Relay id of the person"
// @Success 200 {object} model.Screen
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 502 {object} errorPayload
// @Router /characters/{id} [get]
func CharacterDetail(svc service.ScreenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		screen, err := svc.CharacterDetail(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err, "character not found")
		}
		return c.JSON(screen)
	}
}
