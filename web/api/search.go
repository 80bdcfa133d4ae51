package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"searchpage/models"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
)

// BodyEncodingHeader selects the msgpack result encoding when set to "msgpack".
const BodyEncodingHeader = "X-Body-Encoding"

// searchTimeout bounds a single mock lookup on top of its configured delay.
const searchTimeout = 10 * time.Second

// Search serves the JSON side of the mock search API.
type Search struct {
	API *models.SearchAPI
}

// CriteriaOutput is the decoded criteria together with their canonical query string.
type CriteriaOutput struct {
	Criteria models.Criteria `json:"criteria"`
	Query    string          `json:"query"`
}

// SearchOutput is returned by GET /api/v1/search.
type SearchOutput struct {
	Criteria   models.Criteria         `json:"criteria"`
	Conditions models.SearchConditions `json:"conditions"`
	Searching  bool                    `json:"searching"`
	Result     *models.SearchResult    `json:"result,omitempty"`
}

// queryCriteria decodes the criteria parameters of the request URL.
func queryCriteria(ctx rweb.Context) models.Criteria {
	values, err := url.ParseQuery(ctx.Request().Query())
	if err != nil {
		logger.Debug("Ignoring malformed query string", "query", ctx.Request().Query())
		return models.Criteria{}
	}
	return models.DecodeCriteria(values)
}

// Criteria handles GET /api/v1/criteria
// Normalizes the criteria parameters and returns the canonical query string.
func (s Search) Criteria(ctx rweb.Context) error {
	c := queryCriteria(ctx)
	return writeSuccess(ctx, http.StatusOK, CriteriaOutput{
		Criteria: c,
		Query:    models.EncodeCriteria(c).Encode(),
	})
}

// Get handles GET /api/v1/search
// Runs the mock lookup for the criteria in the query string.
//
// Query parameters:
//   - title: free-text title (lookup is skipped when empty after trimming)
//   - is_public, is_private: "true" to set
//
// With X-Body-Encoding: msgpack the result is returned Base64 msgpack-encoded.
func (s Search) Get(ctx rweb.Context) error {
	c := queryCriteria(ctx)
	if err := c.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	sc := models.ConditionsFrom(c)
	out := SearchOutput{Criteria: c, Conditions: sc, Searching: sc.IsSearching()}
	if !out.Searching {
		return writeSuccess(ctx, http.StatusOK, out)
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), s.API.Delay+searchTimeout)
	defer cancel()

	res, err := s.API.Search(reqCtx, sc)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "mock search failed"), "search error")
		return writeError(ctx, http.StatusGatewayTimeout, "search did not complete")
	}

	if Header(ctx, BodyEncodingHeader) == "msgpack" {
		resp, err := res.ToMsgPackResponse(c)
		if err != nil {
			logger.LogErr(err, "failed to encode msgpack result")
			return writeError(ctx, http.StatusInternalServerError, "failed to encode result")
		}
		ctx.Response().SetHeader(BodyEncodingHeader, "msgpack")
		return writeSuccess(ctx, http.StatusOK, resp)
	}

	out.Result = &res
	return writeSuccess(ctx, http.StatusOK, out)
}
