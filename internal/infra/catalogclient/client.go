package catalogclient

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"autoparts-pos/internal/domain/vehicle"
	"autoparts-pos/internal/infra"
	"autoparts-pos/internal/pkg/errs"

	"github.com/go-resty/resty/v2"
)

const vehicleModelsPath = "/vehicle-models"

// The catalog API speaks Spanish field names.
type createVehicleModelRequest struct {
	Brand string `json:"marca"`
	Model string `json:"modelo"`
	Year  int    `json:"anio"`
}

type vehicleModelResponse struct {
	ID    string `json:"id"`
	Brand string `json:"marca"`
	Model string `json:"modelo"`
	Year  int    `json:"anio"`
}

type Client struct {
	http   *resty.Client
	logger *slog.Logger
}

func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &Client{http: httpClient, logger: logger}
}

// CreateOrGet asks the catalog to create the model, or return the existing one.
func (c *Client) CreateOrGet(ctx context.Context, brand, model string, year int) (vehicle.Model, error) {
	var body vehicleModelResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(createVehicleModelRequest{Brand: brand, Model: model, Year: year}).
		SetResult(&body).
		Post(vehicleModelsPath)
	if err != nil {
		return vehicle.Model{}, c.fail(infra.KindUpstreamUnavailable, "catalog request failed", err)
	}

	switch resp.StatusCode() {
	case http.StatusOK, http.StatusCreated:
	default:
		cause := fmt.Errorf("catalog responded with status %d", resp.StatusCode())
		if resp.StatusCode() >= http.StatusInternalServerError {
			return vehicle.Model{}, c.fail(infra.KindUpstreamUnavailable, "catalog unavailable", cause)
		}
		return vehicle.Model{}, c.fail(infra.KindUpstreamRejected, "catalog rejected vehicle model", cause)
	}

	if body.ID == "" {
		return vehicle.Model{}, c.fail(infra.KindUpstreamRejected, "catalog response has no id", errs.New("empty id"))
	}

	return toModel(body, brand, model, year), nil
}

func (c *Client) fail(kind infra.ErrorKind, msg string, err error) error {
	return infra.WrapAdapterErr(c.logger, kind, msg, err)
}

// Fields the catalog omits fall back to what was requested.
func toModel(body vehicleModelResponse, brand, model string, year int) vehicle.Model {
	m := vehicle.Model{ID: body.ID, Brand: body.Brand, Model: body.Model, Year: body.Year}
	if m.Brand == "" {
		m.Brand = brand
	}
	if m.Model == "" {
		m.Model = model
	}
	if m.Year == 0 {
		m.Year = year
	}
	return m
}
