package dto

// ErrorResponseDTO는 공통 에러 응답 형식을 통일하기 위한 DTO이다.
type ErrorResponseDTO struct {
	Error string `json:"error" example:"internal server error"`
}

// HealthResponseDTO는 /health 응답 형식이다.
type HealthResponseDTO struct {
	Status         string `json:"status" example:"ok"`
	BackendService string `json:"backend_service,omitempty" example:"down"`
	Error          string `json:"error,omitempty"`
}
