package profile

import (
	"github.com/SriNikhita22/biosync-carechain/internal/domain/profile"
)

type showOutput struct {
	Body profile.HealthData
}

type saveInput struct {
	Body profile.HealthData
}

type saveOutput struct {
	Body profile.HealthData
}

type clearOutput struct {
	Body clearResponse
}

type clearResponse struct {
	Status string `json:"status"`
}
