package hubspotclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	hubspotdomain "github.com/vfg2006/deal-status-api/infrastructure/integrator/hubspot/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// get executa um GET autenticado e decodifica a resposta em out.
// Respostas fora da faixa 2xx viram *hubspotdomain.APIError.
func (c *HubSpotClient) get(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "hubspot: erro ao criar a requisição")
	}

	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "hubspot: erro ao executar a requisição GET %s", path)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "hubspot: erro ao ler a resposta")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newAPIError(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		logrus.WithFields(logrus.Fields{
			"path":  path,
			"error": err.Error(),
		}).Error("hubspot: failed to decode response")
		return errors.Wrap(err, "hubspot: erro ao decodificar a resposta")
	}

	return nil
}

func newAPIError(statusCode int, body []byte) *hubspotdomain.APIError {
	apiErr := &hubspotdomain.APIError{
		StatusCode: statusCode,
		Raw:        string(body),
	}

	var errResp hubspotdomain.ErrorResponse
	if len(body) > 0 && json.Unmarshal(body, &errResp) == nil && errResp.Message != "" {
		apiErr.Body = &errResp
	}

	return apiErr
}

func objectPath(objectType, objectID string) string {
	return fmt.Sprintf("/crm/v3/objects/%s/%s", objectType, url.PathEscape(objectID))
}
