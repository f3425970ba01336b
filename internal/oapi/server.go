package oapi

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Redirect to the landing page
	// (GET /)
	GetRoot(c *fiber.Ctx) error
	// List all activities
	// (GET /activities)
	GetActivities(c *fiber.Ctx) error
	// Get a single activity
	// (GET /activities/{activity_name})
	GetActivitiesActivityName(c *fiber.Ctx, activityName string) error
	// Sign up for an activity
	// (POST /activities/{activity_name}/signup)
	PostActivitiesActivityNameSignup(c *fiber.Ctx, activityName string, params PostActivitiesActivityNameSignupParams) error
	// Unregister from an activity
	// (POST /activities/{activity_name}/unregister)
	PostActivitiesActivityNameUnregister(c *fiber.Ctx, activityName string, params PostActivitiesActivityNameUnregisterParams) error
}

// ServerInterfaceWrapper converts contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetRoot operation middleware
func (siw *ServerInterfaceWrapper) GetRoot(c *fiber.Ctx) error {
	return siw.Handler.GetRoot(c)
}

// GetActivities operation middleware
func (siw *ServerInterfaceWrapper) GetActivities(c *fiber.Ctx) error {
	return siw.Handler.GetActivities(c)
}

// GetActivitiesActivityName operation middleware
func (siw *ServerInterfaceWrapper) GetActivitiesActivityName(c *fiber.Ctx) error {
	activityName, err := pathParam(c, "activity_name")
	if err != nil {
		return err
	}
	return siw.Handler.GetActivitiesActivityName(c, activityName)
}

// PostActivitiesActivityNameSignup operation middleware
func (siw *ServerInterfaceWrapper) PostActivitiesActivityNameSignup(c *fiber.Ctx) error {
	activityName, err := pathParam(c, "activity_name")
	if err != nil {
		return err
	}
	email, err := requiredQuery(c, "email")
	if err != nil {
		return err
	}
	return siw.Handler.PostActivitiesActivityNameSignup(c, activityName, PostActivitiesActivityNameSignupParams{Email: email})
}

// PostActivitiesActivityNameUnregister operation middleware
func (siw *ServerInterfaceWrapper) PostActivitiesActivityNameUnregister(c *fiber.Ctx) error {
	activityName, err := pathParam(c, "activity_name")
	if err != nil {
		return err
	}
	email, err := requiredQuery(c, "email")
	if err != nil {
		return err
	}
	return siw.Handler.PostActivitiesActivityNameUnregister(c, activityName, PostActivitiesActivityNameUnregisterParams{Email: email})
}

// RegisterHandlers mounts every API route on router.
func RegisterHandlers(router fiber.Router, si ServerInterface) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.Get("/", wrapper.GetRoot)
	router.Get("/activities", wrapper.GetActivities)
	router.Get("/activities/:activity_name", wrapper.GetActivitiesActivityName)
	router.Post("/activities/:activity_name/signup", wrapper.PostActivitiesActivityNameSignup)
	router.Post("/activities/:activity_name/unregister", wrapper.PostActivitiesActivityNameUnregister)
}

// pathParam decodes a path segment. The result does not alias fasthttp buffers.
func pathParam(c *fiber.Ctx, name string) (string, error) {
	v, err := url.PathUnescape(c.Params(name))
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return utils.CopyString(v), nil
}

func requiredQuery(c *fiber.Ctx, name string) (string, error) {
	query, err := url.ParseQuery(string(c.Request().URI().QueryString()))
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Invalid format for query string: %s", err))
	}
	if !query.Has(name) {
		return "", fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Query argument %s is required, but not found", name))
	}
	return query.Get(name), nil
}
