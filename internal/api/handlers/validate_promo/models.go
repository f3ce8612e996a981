package validate_promo

// ValidatePromoRequest проверка промокода на форме бронирования
type ValidatePromoRequest struct {
	Code     string `json:"code" validate:"required,max=32"`
	TripType string `json:"tripType" validate:"required,oneof=home_to_airport airport_to_home"`
}
