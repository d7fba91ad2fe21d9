package response

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/planeta-guru/storefront-service/pkg/errs"
	"github.com/planeta-guru/storefront-service/pkg/httpclient"
)

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Errors  interface{} `json:"errors"`
}

// ResultResponse is the {success, error} convention used by favorite
// add/remove instead of a thrown error.
type ResultResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func WriteSuccessResponse(c echo.Context, message string, data interface{}) error {
	resp := SuccessResponse{}
	resp.Status = "success"
	resp.Data = data
	resp.Message = message

	return c.JSON(http.StatusOK, resp)
}

func WriteErrorResponse(c echo.Context, err error, details interface{}) error {
	resp := ErrorResponse{}
	resp.Status = "error"
	resp.Message = err.Error()
	resp.Errors = details

	var apiErr *httpclient.ApiError
	if errors.As(err, &apiErr) {
		return c.JSON(apiErr.Status, resp)
	}

	return c.JSON(errs.GetErrorStatusCode(err), resp)
}

func WriteResultResponse(c echo.Context, err error) error {
	if err != nil {
		return c.JSON(http.StatusOK, ResultResponse{Success: false, Error: err.Error()})
	}
	return c.JSON(http.StatusOK, ResultResponse{Success: true})
}
