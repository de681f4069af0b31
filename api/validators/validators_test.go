package validators

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/salonadmin/pkg/enums"
	pkgerrors "github.com/angelmondragon/salonadmin/pkg/errors"
	"github.com/angelmondragon/salonadmin/pkg/validation"
)

type statusBody struct {
	Status enums.BookingStatus `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

func TestDecodeJSONBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"status":"confirmed"}`))
	var body statusBody
	require.NoError(t, DecodeJSONBody(req, &body))
	assert.Equal(t, enums.BookingStatusConfirmed, body.Status)

	req = httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"status":"archived"}`))
	err := DecodeJSONBody(req, &statusBody{})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
	assert.Equal(t, []string{"status"}, validation.Fields(err))

	req = httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"status":"confirmed","extra":1}`))
	err = DecodeJSONBody(req, &statusBody{})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
}

func TestReadRawJSONRequiresObject(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"name":"x"}`))
	raw, err := ReadRawJSON(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"x"}`, string(raw))

	req = httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`[1,2]`))
	_, err = ReadRawJSON(req)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
}

func TestParsePage(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?limit=20&offset=40", nil)
	page, err := ParsePage(req)
	require.NoError(t, err)
	assert.Equal(t, 20, page.Limit)
	assert.Equal(t, 40, page.Offset)

	req = httptest.NewRequest(http.MethodGet, "/?limit=0", nil)
	_, err = ParsePage(req)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	page, err = ParsePage(req)
	require.NoError(t, err)
	assert.Equal(t, 50, page.Limit)
}

func TestParseQueryEnum(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?tier=GOLD", nil)
	tier, err := ParseQueryEnum(req, "tier", enums.ParseLoyaltyTier)
	require.NoError(t, err)
	assert.Equal(t, enums.LoyaltyTierGold, tier)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	tier, err = ParseQueryEnum(req, "tier", enums.ParseLoyaltyTier)
	require.NoError(t, err)
	assert.Empty(t, tier)

	req = httptest.NewRequest(http.MethodGet, "/?tier=diamond", nil)
	_, err = ParseQueryEnum(req, "tier", enums.ParseLoyaltyTier)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
}

func TestParseQueryDate(t *testing.T) {
	loc := time.FixedZone("venue", 2*3600)
	req := httptest.NewRequest(http.MethodGet, "/?from=2026-03-01&to=03/07/2026", nil)

	from, err := ParseQueryDate(req, "from", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, loc), from)

	_, err = ParseQueryDate(req, "to", loc)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))

	_, err = ParseQueryDate(req, "missing", loc)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
}

func TestURLParams(t *testing.T) {
	rc := chi.NewRouteContext()
	rc.URLParams.Add("bookingId", "12")
	rc.URLParams.Add("draftId", "not-a-uuid")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rc))

	id, err := URLParamInt64(req, "bookingId")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	_, err = URLParamUUID(req, "draftId")
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))

	_, err = URLParamInt64(req, "missing")
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "abc", SanitizeString("  abc  ", 10))
	assert.Equal(t, "ab", SanitizeString("abcdef", 2))
	assert.Equal(t, "caf", SanitizeString("café", 4))
}
