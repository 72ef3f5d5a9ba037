package handler // declare the package name; contains HTTP handlers

import (
    "net/http" // net/http provides status codes and response helpers

    "github.com/labstack/echo/v4" // echo is the web framework used for this project
)

// Health is a simple health-check endpoint used by the dashboard UI and
// monitoring systems to verify that the service is running. The response
// body is fixed; the dashboard displays it verbatim.
func Health(c echo.Context) error {
    return c.JSON(http.StatusOK, echo.Map{"status": "Backend is running!"})
}
