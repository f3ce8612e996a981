package get_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TaxiBooking/internal/service/bookings"
	"github.com/m04kA/SMC-TaxiBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-TaxiBooking/pkg/logger"
)

type mockService struct{ mock.Mock }

func (m *mockService) GetByID(ctx context.Context, id uuid.UUID) (*models.BookingResponse, error) {
	args := m.Called(ctx, id)
	resp, _ := args.Get(0).(*models.BookingResponse)
	return resp, args.Error(1)
}

func get(h *Handler, id string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/"+id, nil)
	r = mux.SetURLVars(r, map[string]string{"bookingId": id})
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name string
		id   string
		err  error
		want int
	}{
		{name: "ok", id: id.String(), want: http.StatusOK},
		{name: "bad id", id: "not-a-uuid", want: http.StatusBadRequest},
		{name: "not found", id: id.String(), err: bookings.ErrBookingNotFound, want: http.StatusNotFound},
		{name: "internal", id: id.String(), err: bookings.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			h := NewHandler(svc, logger.NewNop())

			if tt.err != nil {
				svc.On("GetByID", mock.Anything, id).Return(nil, tt.err)
			} else {
				svc.On("GetByID", mock.Anything, id).
					Return(&models.BookingResponse{ID: id.String(), BookingNumber: "TX-20250301-ABCD"}, nil)
			}

			w := get(h, tt.id)
			assert.Equal(t, tt.want, w.Code)

			if tt.want == http.StatusOK {
				var resp models.BookingResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, id.String(), resp.ID)
			}
		})
	}
}
