package handler

type SelectCountryRequest struct {
	Code string `json:"code" binding:"required"`
}
