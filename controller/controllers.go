package controller

import (
	"net/http"

	"github.com/Watergold12/alumni-notifier/log"
	"github.com/Watergold12/alumni-notifier/service"
	"github.com/Watergold12/alumni-notifier/service/dto"
	"github.com/labstack/echo/v4"
)

// DryRun godoc
// @Summary Preview today's greetings
// @Description Lists today's recipients and their rendered messages without sending or recording anything
// @Produce json
// @Success 200 {object} dto.DryRun
// @Router /dry-run [get]
func GetDryRunFunc(srv service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		preview, err := srv.DryRun(c.Request().Context())
		if err != nil {
			log.Error.Println(err)
			return c.String(http.StatusInternalServerError, "System malfunction. Please, try later")
		}

		return c.JSON(http.StatusOK, preview)
	}
}

// Trigger godoc
// @Summary Run a full send pass
// @Description Sends a birthday greeting to every recipient whose birthdate falls on today and records each attempt
// @Produce json
// @Success 200 {object} dto.Summary
// @Router /trigger [post]
func GetTriggerFunc(srv service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		summary, err := srv.Run(c.Request().Context())
		if err != nil {
			log.Error.Println(err)
			return c.String(http.StatusInternalServerError, "System malfunction. Please, try later")
		}

		return c.JSON(http.StatusOK, summary)
	}
}

// DebugEnv godoc
// @Summary Check required bindings
// @Description Reports presence of the store binding and the Telegram secrets without revealing their values
// @Produce json
// @Success 200 {object} dto.EnvCheck
// @Router /debug-env [get]
func GetDebugEnvFunc(check dto.EnvCheck) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, check)
	}
}

// Root godoc
// @Summary Liveness
// @Produce plain
// @Success 200 {string} string
// @Router / [get]
func GetRootFunc() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.String(http.StatusOK, "OK - alumni notifier alive. Use /dry-run or POST /trigger.")
	}
}
