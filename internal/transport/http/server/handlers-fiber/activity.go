package handlers_fiber

import (
	"net/http"

	"mergington-activities/internal/mapper"
	api "mergington-activities/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// GetRoot redirects to the static landing page.
func (h *Handler) GetRoot(c *fiber.Ctx) error {
	return c.Redirect(LandingPage, http.StatusTemporaryRedirect)
}

// GetActivities returns every activity keyed by name.
func (h *Handler) GetActivities(c *fiber.Ctx) error {
	list, err := h.uc.Activities(c.UserContext())
	if err != nil {
		h.log.Errorw("failed to list activities", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIActivities(list))
}

// GetActivitiesActivityName returns a single activity.
func (h *Handler) GetActivitiesActivityName(c *fiber.Ctx, activityName string) error {
	a, err := h.uc.Activity(c.UserContext(), activityName)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIActivity(a))
}

// PostActivitiesActivityNameSignup signs a student up for an activity.
func (h *Handler) PostActivitiesActivityNameSignup(c *fiber.Ctx, activityName string, params api.PostActivitiesActivityNameSignupParams) error {
	res, err := h.uc.SignUp(c.UserContext(), activityName, params.Email)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPISignup(res))
}

// PostActivitiesActivityNameUnregister removes a student from an activity.
func (h *Handler) PostActivitiesActivityNameUnregister(c *fiber.Ctx, activityName string, params api.PostActivitiesActivityNameUnregisterParams) error {
	res, err := h.uc.Unregister(c.UserContext(), activityName, params.Email)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIUnregister(res))
}
