package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tatya/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envelopeOK(t *testing.T, w http.ResponseWriter, data interface{}) {
	t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "",
		"data":    json.RawMessage(raw),
	})
}

func envelopeFail(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": message,
	})
}

func TestDroneWithSpecificationsDecodesEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/drones/42/with-specifications", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		envelopeOK(t, w, models.Drone{
			DroneID:      42,
			Brand:        "AgriHawk",
			PricePerAcre: 450,
			Specifications: []models.DroneSpecification{
				{SpecID: 7, IsAvailable: true},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	drone, err := client.DroneWithSpecifications(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), drone.DroneID)
	assert.Equal(t, "AgriHawk", drone.Brand)
	assert.Equal(t, 450.0, drone.PricePerAcre)
	require.Len(t, drone.Specifications, 1)
	assert.Equal(t, int64(7), drone.Specifications[0].SpecID)
}

func TestBackendMessageSurfacesVerbatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		envelopeFail(w, http.StatusBadRequest, "Invalid OTP code")
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.VerifyOTP(context.Background(), "9876543210", "1234")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Invalid OTP code", apiErr.Message)
}

func TestFallbackMessageWhenBackendSilent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		envelopeFail(w, http.StatusInternalServerError, "")
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.GenerateOTP(context.Background(), "9876543210")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Failed to generate OTP", apiErr.Message)
}

func TestSuccessFalseIsAnErrorDespite200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		envelopeFail(w, http.StatusOK, "Drone is no longer available")
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.CreateBooking(context.Background(), models.BookingDraft{DroneID: 1})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Drone is no longer available", apiErr.Message)
}

func TestUnreachableBackendYieldsFallback(t *testing.T) {
	client := NewClient("http://127.0.0.1:1")
	err := client.Health(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "API is not available", apiErr.Message)
}

func TestCreatePaymentOrderUsesBareJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payment/create-order", r.URL.Path)
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.EqualValues(t, 9, body["bookingId"])
		// No envelope on payment endpoints.
		json.NewEncoder(w).Encode(map[string]interface{}{
			"orderId": "order_abc123",
			"amount":  1416.0,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	order, err := client.CreatePaymentOrder(context.Background(), 9, 1416)
	require.NoError(t, err)
	assert.Equal(t, "order_abc123", order.OrderID)
	assert.Equal(t, 1416.0, order.Amount)
}

func TestVerifyPaymentErrorFromBareJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "signature mismatch"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.VerifyPayment(context.Background(), "order_abc", "pay_x", "sig_y")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "signature mismatch", apiErr.Message)
}

func TestCreatePaymentOrderDecodesBackendOrderID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"orderId": "order_real_1",
			"amount":  1416.0,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	order, err := client.CreatePaymentOrder(context.Background(), 9, 1416)
	require.NoError(t, err)
	assert.Equal(t, "order_real_1", order.OrderID)
}

func TestAdminExportDownloadsBytes(t *testing.T) {
	workbook := []byte{0x50, 0x4B, 0x03, 0x04, 0x01, 0x02} // zip magic
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/vendors/export/excel", r.URL.Path)
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Write(workbook)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	data, err := client.AdminExportVendorsExcel(context.Background())
	require.NoError(t, err)
	assert.Equal(t, workbook, data)
}

func TestAdminExportErrorUsesFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.AdminExportUsersExcel(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Failed to export users", apiErr.Message)
}

func TestAdminFinanceStats(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/finance/stats", r.URL.Path)
		envelopeOK(t, w, models.AdminDashboardStats{TotalOrders: 12, TotalCollection: 45200})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	stats, err := client.AdminFinanceStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalOrders)
	assert.Equal(t, 45200.0, stats.TotalCollection)
}

func TestFarmsUseBareEntityJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/farms":
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "7", r.URL.Query().Get("userId"))
			var farm models.Farm
			require.NoError(t, json.NewDecoder(r.Body).Decode(&farm))
			farm.FarmID = 31
			json.NewEncoder(w).Encode(farm)
		case "/farms/user/7":
			json.NewEncoder(w).Encode([]models.Farm{{FarmID: 31, Name: "North plot"}})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL)
	saved, err := client.AddFarm(context.Background(), 7, models.Farm{
		Name: "North plot", Latitude: 19.2, Longitude: 72.9, AreaAcres: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(31), saved.FarmID)
	assert.Equal(t, "North plot", saved.Name)

	farms, err := client.FarmsByUser(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, farms, 1)
	assert.Equal(t, int64(31), farms[0].FarmID)
}

func TestActiveClustersList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/clusters/active", r.URL.Path)
		json.NewEncoder(w).Encode([]models.Cluster{
			{ClusterID: 2, Name: "Nashik belt", Status: models.ClusterActive, CenterLatitude: 19.99},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	clusters, err := client.ActiveClusters(context.Background())
	require.NoError(t, err)
	require.Len(t, clusters, 1)
	assert.Equal(t, models.ClusterActive, clusters[0].Status)
	assert.Equal(t, "Nashik belt", clusters[0].Name)
}

func TestAvailableDatesList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/availability/drone/5/dates", r.URL.Path)
		envelopeOK(t, w, []string{"2026-09-01", "2026-09-02"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	dates, err := client.AvailableDates(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-09-01", "2026-09-02"}, dates)
}
