package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gregglawdallas/caseval/internal/config"
	"github.com/gregglawdallas/caseval/internal/domain"
	"github.com/gregglawdallas/caseval/internal/store"
)

func newTestServer(t *testing.T, cfg config.ServerConfig) (*httptest.Server, *store.SQLiteStore) {
	t.Helper()
	st, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	require.NoError(t, st.Migrate(context.Background()))

	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}
	ts := httptest.NewServer(New(st, cfg, zap.NewNop()).Router())
	t.Cleanup(ts.Close)
	return ts, st
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestHealth(t *testing.T) {
	ts, _ := newTestServer(t, config.ServerConfig{})

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCatalogEndpoint(t *testing.T) {
	ts, _ := newTestServer(t, config.ServerConfig{})

	resp, err := http.Get(ts.URL + "/api/catalog")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var catalog struct {
		Standard       domain.StandardCalculatorConfig `json:"standard"`
		Serious        domain.SeriousCalculatorConfig  `json:"serious"`
		NonEconFactors []domain.NonEconFactor          `json:"nonEconFactors"`
		FaultPercents  []int                           `json:"faultPercents"`
	}
	decodeBody(t, resp, &catalog)

	assert.Len(t, catalog.Standard.BodyParts, 4)
	assert.Len(t, catalog.Serious.Injuries, 8)
	assert.Len(t, catalog.NonEconFactors, 6)
	assert.Equal(t, []int{0, 10, 20, 30, 40, 50}, catalog.FaultPercents)
}

func TestEstimateMinorStaysLocked(t *testing.T) {
	ts, _ := newTestServer(t, config.ServerConfig{})

	resp := postJSON(t, ts.URL+"/api/estimate/minor", map[string]any{
		"bodyPartId":   "sprains",
		"conductId":    "standard",
		"medicalBills": "5000",
		"lostWages":    "500",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw := map[string]any{}
	decodeBody(t, resp, &raw)

	assert.Equal(t, true, raw["locked"])
	assert.Equal(t, "2.8", raw["multiplier"])
	assert.NotContains(t, raw, "rangeLow", "dollar figures stay behind the gate")
	assert.NotContains(t, raw, "economic")
}

func TestUnlockMinorRevealsAndCaptures(t *testing.T) {
	ts, st := newTestServer(t, config.ServerConfig{})

	resp := postJSON(t, ts.URL+"/api/unlock/minor", map[string]any{
		"input": map[string]any{
			"bodyPartId":   "sprains",
			"conductId":    "standard",
			"medicalBills": "5000",
			"lostWages":    "500",
		},
		"contact": map[string]any{
			"name":   "Ana Ruiz",
			"phone":  "(214) 555-0100",
			"agreed": true,
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Estimate domain.MinorEstimate `json:"estimate"`
		LeadID   string               `json:"leadId"`
	}
	decodeBody(t, resp, &body)

	assert.Equal(t, "13612", body.Estimate.RangeLow.String())
	assert.Equal(t, "16637", body.Estimate.RangeHigh.String())
	require.NotEmpty(t, body.LeadID)

	leads, err := st.ListLeads(context.Background(), store.LeadFilter{})
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, body.LeadID, leads[0].ID)
	assert.Equal(t, "Ana Ruiz", leads[0].Name)
}

func TestUnlockRejectsIncompleteContact(t *testing.T) {
	ts, st := newTestServer(t, config.ServerConfig{})

	resp := postJSON(t, ts.URL+"/api/unlock/minor", map[string]any{
		"input":   map[string]any{"bodyPartId": "sprains", "conductId": "standard"},
		"contact": map[string]any{"name": "Ana Ruiz", "agreed": true},
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	leads, err := st.ListLeads(context.Background(), store.LeadFilter{})
	require.NoError(t, err)
	assert.Empty(t, leads, "no lead without a valid contact")
}

func TestUnlockSerious(t *testing.T) {
	ts, _ := newTestServer(t, config.ServerConfig{})

	resp := postJSON(t, ts.URL+"/api/unlock/serious", map[string]any{
		"input": map[string]any{
			"injuryTypeId":    "tbi",
			"tierIndex":       1,
			"conductId":       "standard",
			"medicalBills":    "400000",
			"lostWages":       "150000",
			"futureMedical":   "50000",
			"outOfPocket":     "5000",
			"selectedFactors": []string{"pain", "quality", "disfigure", "impair"},
		},
		"contact": map[string]any{"name": "Ana Ruiz", "phone": "(214) 555-0100", "agreed": true},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Estimate domain.SeriousEstimate `json:"estimate"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "3630000", body.Estimate.NetRecovery.String())
}

func TestEstimateSeriousTierOutOfRange(t *testing.T) {
	ts, _ := newTestServer(t, config.ServerConfig{})

	resp := postJSON(t, ts.URL+"/api/estimate/serious", map[string]any{
		"injuryTypeId": "tbi",
		"tierIndex":    7,
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestAdminRequiresToken(t *testing.T) {
	ts, _ := newTestServer(t, config.ServerConfig{AdminToken: "secret"})

	resp, err := http.Get(ts.URL + "/api/admin/leads")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/admin/leads", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer secret")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdminCatalogRoundTrip(t *testing.T) {
	ts, _ := newTestServer(t, config.ServerConfig{})

	cfg := domain.DefaultStandardConfig()
	cfg.ConductTypes[0].Multiplier = cfg.ConductTypes[0].Multiplier.Add(cfg.ConductTypes[0].Multiplier)

	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPut, ts.URL+"/api/admin/catalog/standard", bytes.NewReader(data))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/api/admin/catalog/standard")
	require.NoError(t, err)
	var loaded domain.StandardCalculatorConfig
	decodeBody(t, resp, &loaded)
	assert.Equal(t, "5", loaded.ConductTypes[0].Multiplier.String())
}

func TestAdminCatalogRejectsInvalid(t *testing.T) {
	ts, _ := newTestServer(t, config.ServerConfig{})

	cfg := domain.DefaultSeriousConfig()
	cfg.Injuries[0].Tiers = cfg.Injuries[0].Tiers[:1]
	data, err := json.Marshal(cfg)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPut, ts.URL+"/api/admin/catalog/serious", bytes.NewReader(data))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestAdminLeadLifecycle(t *testing.T) {
	ts, st := newTestServer(t, config.ServerConfig{})
	ctx := context.Background()

	saved, err := st.SaveLead(ctx, domain.CalculatorLead{
		Name:             "Ana Ruiz",
		Phone:            "(214) 555-0100",
		CalculatorSource: domain.SourceMinor,
	})
	require.NoError(t, err)

	resp, err := http.Post(ts.URL+"/api/admin/leads/"+saved.ID+"/archive", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/api/admin/archive")
	require.NoError(t, err)
	var archived []domain.ArchivedLead
	decodeBody(t, resp, &archived)
	require.Len(t, archived, 1)

	resp, err = http.Post(ts.URL+"/api/admin/leads/"+saved.ID+"/recover", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	leads, err := st.ListLeads(ctx, store.LeadFilter{})
	require.NoError(t, err)
	assert.Len(t, leads, 1)
}

func TestBenchmarksEndpointFilters(t *testing.T) {
	ts, st := newTestServer(t, config.ServerConfig{})
	ctx := context.Background()

	_, err := st.AddBenchmark(ctx, domain.SettlementBenchmark{InjuryID: "tbi", Text: "one"})
	require.NoError(t, err)
	_, err = st.AddBenchmark(ctx, domain.SettlementBenchmark{InjuryID: "burns", Text: "two"})
	require.NoError(t, err)

	resp, err := http.Get(ts.URL + "/api/benchmarks?injury=tbi")
	require.NoError(t, err)
	var benchmarks []domain.SettlementBenchmark
	decodeBody(t, resp, &benchmarks)
	require.Len(t, benchmarks, 1)
	assert.Equal(t, "tbi", benchmarks[0].InjuryID)
}

func TestLeadsExportCSV(t *testing.T) {
	ts, st := newTestServer(t, config.ServerConfig{})

	_, err := st.SaveLead(context.Background(), domain.CalculatorLead{
		Name:             "Ana Ruiz",
		Phone:            "(214) 555-0100",
		CalculatorSource: domain.SourceEstate,
	})
	require.NoError(t, err)

	resp, err := http.Get(ts.URL + "/api/admin/leads/export")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
}
