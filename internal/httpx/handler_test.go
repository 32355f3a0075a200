package httpx

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ariefcatur/go-kasir.git/internal/kv"
	"github.com/ariefcatur/go-kasir.git/internal/sales"
	"github.com/go-chi/chi/v5"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePublisher struct {
	mu   sync.Mutex
	msgs []kafkago.Message
}

func (f *fakePublisher) Publish(key, value []byte, headers ...kafkago.Header) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.msgs = append(f.msgs, kafkago.Message{Key: key, Value: value, Headers: headers})
}

type testAPI struct {
	router    *chi.Mux
	committed *fakePublisher
	edited    *fakePublisher
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	log := zap.NewNop()
	store := kv.NewMemStore()
	catalog := &sales.Catalog{Store: store}
	ledger := &sales.Ledger{Store: store}
	profiles := &sales.Profiles{Store: store}
	api := &testAPI{router: NewRouter(log), committed: &fakePublisher{}, edited: &fakePublisher{}}

	(&ProductsHandler{Catalog: catalog, Log: log}).Register(api.router)
	(&CartHandler{Catalog: catalog, Checkout: sales.NewCheckout(ledger), Committed: api.committed, Service: "kasir-api", Log: log}).Register(api.router)
	(&TransactionsHandler{Ledger: ledger, Profiles: profiles, Edited: api.edited, Service: "kasir-api", Location: time.UTC, Log: log}).Register(api.router)
	(&StoreHandler{Profiles: profiles}).Register(api.router)
	return api
}

func (a *testAPI) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestHealthz(t *testing.T) {
	rec := newTestAPI(t).do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestCheckoutFlow(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/products", sales.ProductInput{Name: "Papan", Price: 10000, Stock: 2})
	require.Equal(t, http.StatusCreated, rec.Code)
	p := decodeBody[sales.Product](t, rec)

	for i := 0; i < 2; i++ {
		rec = api.do(t, http.MethodPost, "/cart/items", map[string]string{"product_id": p.ID})
		require.Equal(t, http.StatusOK, rec.Code)
	}
	view := decodeBody[sales.CartView](t, rec)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Quantity)
	assert.Equal(t, 20000.0, view.Total)
	assert.Equal(t, -20000.0, view.Change)

	rec = api.do(t, http.MethodPut, "/cart/checkout", map[string]string{"payment": "25000", "customer_name": "Budi"})
	require.Equal(t, http.StatusOK, rec.Code)
	view = decodeBody[sales.CartView](t, rec)
	assert.Equal(t, 5000.0, view.Change)
	assert.True(t, view.Ready)

	rec = api.do(t, http.MethodPost, "/cart/commit", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	trx := decodeBody[sales.Transaction](t, rec)
	assert.Equal(t, 20000.0, trx.Total)
	assert.Equal(t, 5000.0, trx.Change)
	assert.Equal(t, sales.StatusLunas, trx.Status)

	require.Len(t, api.committed.msgs, 1)
	var env sales.Envelope
	require.NoError(t, json.Unmarshal(api.committed.msgs[0].Value, &env))
	assert.Equal(t, sales.EventTransactionCommitted, env.EventType)
	assert.Equal(t, trx.ID, env.CorrelationID)
	assert.Equal(t, trx.ID, string(api.committed.msgs[0].Key))

	rec = api.do(t, http.MethodGet, "/transactions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]sales.Transaction](t, rec), 1)

	rec = api.do(t, http.MethodPost, "/cart/reset", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeBody[sales.CartView](t, rec).Items)
}

func TestCommitRejected(t *testing.T) {
	api := newTestAPI(t)
	rec := api.do(t, http.MethodPost, "/cart/commit", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, sales.ReasonCartEmpty, decodeBody[map[string]string](t, rec)["error"])
	assert.Empty(t, api.committed.msgs)
}

func TestAddUnknownProduct(t *testing.T) {
	rec := newTestAPI(t).do(t, http.MethodPost, "/cart/items", map[string]string{"product_id": "ghost"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSetCheckoutInvalidStatus(t *testing.T) {
	rec := newTestAPI(t).do(t, http.MethodPut, "/cart/checkout", map[string]string{"status": "Lunas?"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestPricing(t *testing.T) {
	api := newTestAPI(t)
	rec := api.do(t, http.MethodPost, "/pricing", map[string]string{"satuan": "20000", "panjang": "2", "lebar": "1.5"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 60000.0, decodeBody[map[string]float64](t, rec)["price"])

	rec = api.do(t, http.MethodPost, "/pricing", map[string]string{"satuan": "0", "panjang": "2", "lebar": "1.5"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestPricingOverflow(t *testing.T) {
	rec := newTestAPI(t).do(t, http.MethodPost, "/pricing", map[string]string{"satuan": "1e200", "panjang": "1e200", "lebar": "1"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, sales.ErrOutOfRange.Error(), decodeBody[map[string]string](t, rec)["error"])
}

func TestCartTotalOverflow(t *testing.T) {
	api := newTestAPI(t)
	rec := api.do(t, http.MethodPost, "/products", sales.ProductInput{Name: "Mahal", Price: 1e308})
	require.Equal(t, http.StatusCreated, rec.Code)
	p := decodeBody[sales.Product](t, rec)

	api.do(t, http.MethodPost, "/cart/items", map[string]string{"product_id": p.ID})
	rec = api.do(t, http.MethodPost, "/cart/items", map[string]string{"product_id": p.ID})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, decodeBody[map[string]string](t, rec)["error"])

	api.do(t, http.MethodPut, "/cart/checkout", map[string]string{"payment": "1e308", "customer_name": "Budi"})
	rec = api.do(t, http.MethodPost, "/cart/commit", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, sales.ReasonPaymentShort, decodeBody[map[string]string](t, rec)["error"])
	assert.Empty(t, api.committed.msgs)
}

func TestProductSearchUpdateDelete(t *testing.T) {
	api := newTestAPI(t)
	rec := api.do(t, http.MethodPost, "/products", sales.ProductInput{Name: "Papan Jati", Price: 10000})
	require.Equal(t, http.StatusCreated, rec.Code)
	p := decodeBody[sales.Product](t, rec)
	api.do(t, http.MethodPost, "/products", sales.ProductInput{Name: "Triplek", Price: 5000})

	rec = api.do(t, http.MethodGet, "/products?q=jati", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]sales.Product](t, rec), 1)

	p.Price = 15000
	rec = api.do(t, http.MethodPut, "/products/"+p.ID, p)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = api.do(t, http.MethodPut, "/products/ghost", sales.Product{Name: "Ghost"})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = api.do(t, http.MethodPut, "/products/"+p.ID, sales.Product{Name: ""})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = api.do(t, http.MethodDelete, "/products/"+p.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = api.do(t, http.MethodGet, "/products", nil)
	assert.Len(t, decodeBody[[]sales.Product](t, rec), 1)
}

func TestEditTransactionAndReceipt(t *testing.T) {
	api := newTestAPI(t)
	rec := api.do(t, http.MethodPut, "/store", sales.StoreProfile{Name: "Toko Kayu", Phone: "0812"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(t, http.MethodPost, "/products", sales.ProductInput{Name: "Papan", Price: 10000})
	p := decodeBody[sales.Product](t, rec)
	api.do(t, http.MethodPost, "/cart/items", map[string]string{"product_id": p.ID})
	api.do(t, http.MethodPut, "/cart/checkout", map[string]string{"payment": "10000", "customer_name": "Budi", "status": "Cicilan"})
	rec = api.do(t, http.MethodPost, "/cart/commit", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	trx := decodeBody[sales.Transaction](t, rec)
	assert.Equal(t, sales.StatusCicilan, trx.Status)

	rec = api.do(t, http.MethodPatch, "/transactions/"+trx.ID, map[string]any{"paid": 12000, "status": "Lunas"})
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Len(t, api.edited.msgs, 1)

	rec = api.do(t, http.MethodGet, "/transactions/"+trx.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[sales.Transaction](t, rec)
	assert.Equal(t, 2000.0, got.Change)
	assert.Equal(t, 10000.0, got.Total)
	assert.Equal(t, sales.StatusLunas, got.Status)

	rec = api.do(t, http.MethodPatch, "/transactions/ghost", map[string]any{"paid": 1})
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Len(t, api.edited.msgs, 1)

	rec = api.do(t, http.MethodGet, "/transactions/"+trx.ID+"/receipt", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/plain"))
	assert.Contains(t, rec.Body.String(), "TOKO KAYU")
	assert.Contains(t, rec.Body.String(), "Rp 2.000")

	rec = api.do(t, http.MethodGet, "/transactions/ghost/receipt", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInvalidJSON(t *testing.T) {
	api := newTestAPI(t)
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
