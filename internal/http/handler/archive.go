package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jediarchives/internal/model"
	"jediarchives/internal/service"
)

type createArchiveRequest struct {
	Route string `json:"route" example:"/films/ZmlsbXM6MQ=="`
}

// archiveID validates the :id parameter, which is always a UUID.
func archiveID(c *fiber.Ctx) (string, bool) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

// CreateArchive renders the screen named by the body's route and stores a snapshot.
//
// @Summary Archive a screen
// @Tags archives
// @Accept json
// @Produce json
// @Param body body createArchiveRequest true "Screen route"
// @Success 201 {object} model.Archive
// @Failure 400 {object} errorPayload
// @Failure 502 {object} errorPayload
// @Router /archives [post]
func CreateArchive(svc service.ArchiveService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createArchiveRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ROUTE", "route is required")
		}
		route, err := model.ParseRoute(req.Route)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ROUTE", "route does not name a screen")
		}

		archive, err := svc.Create(c.UserContext(), route)
		if err != nil {
			return writeServiceError(c, err, "screen subject not found")
		}
		return c.Status(fiber.StatusCreated).JSON(archive)
	}
}

// ListArchives returns archived snapshots, newest first.
//
// @Summary List archives
// @Tags archives
// @Produce json
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} service.ArchiveListResult
// @Failure 400 {object} errorPayload
// @Router /archives [get]
func ListArchives(svc service.ArchiveService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// GetArchive returns archive metadata, including a presigned download URL when configured.
//
// @Summary Get archive
// @Tags archives
// @Produce json
// @Param id path string true "Archive id"
// @Success 200 {object} model.Archive
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /archives/{id} [get]
func GetArchive(svc service.ArchiveService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := archiveID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		archive, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err, "archive not found")
		}
		return c.JSON(archive)
	}
}

// ArchiveContent streams the stored screen JSON.
//
// @Summary Archived screen content
// @Tags archives
// @Produce json
// @Param id path string true "Archive id"
// @Success 200 {object} model.Screen
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /archives/{id}/content [get]
func ArchiveContent(svc service.ArchiveService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := archiveID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		rc, archive, err := svc.Open(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err, "archive not found")
		}

		c.Set(fiber.HeaderContentType, archive.ContentType)
		// fasthttp closes rc once the body has been written.
		return c.SendStream(rc, int(archive.Size))
	}
}

// DeleteArchive removes a snapshot and its metadata.
//
// @Summary Delete archive
// @Tags archives
// @Param id path string true "Archive id"
// @Success 204
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /archives/{id} [delete]
func DeleteArchive(svc service.ArchiveService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := archiveID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err, "archive not found")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
