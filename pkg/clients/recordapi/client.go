package recordapi

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/tcn-coffee/fieldbook/internal/config"
	"github.com/tcn-coffee/fieldbook/internal/domain/models"
	"github.com/tcn-coffee/fieldbook/internal/repository/recordstore"
)

const listPageSize = 200

// Client is a resty-backed recordstore.Store talking to the local-first
// record API backend (the per-collection records endpoint).
type Client struct {
	httpClient *resty.Client
}

// NewClient builds a record API client from the provided configuration.
func NewClient(cfg config.RecordAPIConfig) *Client {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	if cfg.Token != "" {
		restyClient.SetHeader("Authorization", cfg.Token)
	}

	return &Client{httpClient: restyClient}
}

// listResponse mirrors one page of the records listing endpoint.
type listResponse struct {
	Page       int             `json:"page"`
	PerPage    int             `json:"perPage"`
	TotalPages int             `json:"totalPages"`
	Items      []models.Record `json:"items"`
}

// apiError represents an error payload from the record API.
type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ListAll pages through a collection and returns every record in the
// backend's own listing order.
func (c *Client) ListAll(ctx context.Context, collection models.Collection) ([]models.Record, error) {
	if err := recordstore.ValidateCollection(collection); err != nil {
		return nil, err
	}

	var records []models.Record
	for page := 1; ; page++ {
		result := new(listResponse)
		apiErr := new(apiError)

		resp, err := c.httpClient.R().
			SetContext(ctx).
			SetQueryParam("page", fmt.Sprintf("%d", page)).
			SetQueryParam("perPage", fmt.Sprintf("%d", listPageSize)).
			SetResult(result).
			SetError(apiErr).
			Get(fmt.Sprintf("/api/collections/%s/records", collection))
		if err != nil {
			return nil, fmt.Errorf("list %s page %d: %w", collection, page, err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("list %s page %d: %s (status %d)", collection, page, apiErr.Message, resp.StatusCode())
		}

		records = append(records, result.Items...)

		if result.TotalPages == 0 || page >= result.TotalPages {
			break
		}
	}

	return records, nil
}

// Create posts one record and returns the stored row as the backend echoes
// it, including the identity it assigned.
func (c *Client) Create(ctx context.Context, collection models.Collection, fields models.Record) (models.Record, error) {
	if err := recordstore.ValidateCollection(collection); err != nil {
		return nil, err
	}

	payload := make(models.Record, len(fields))
	for k, v := range fields {
		if k == "id" {
			continue
		}
		payload[k] = v
	}

	result := models.Record{}
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&result).
		SetError(apiErr).
		Post(fmt.Sprintf("/api/collections/%s/records", collection))
	if err != nil {
		return nil, fmt.Errorf("create in %s: %w", collection, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("create in %s: %s (status %d)", collection, apiErr.Message, resp.StatusCode())
	}

	return result, nil
}
