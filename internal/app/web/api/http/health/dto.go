package health

// Input represents the input for the health endpoint
type Input struct{}

// Output represents the output for the health endpoint
type Output struct {
	Body Response
}

// Response reports liveness plus the vault's last write marker, so a
// probe can tell a fresh database from one that has seen activity.
type Response struct {
	Status      string `json:"status" example:"OK" doc:"Health status of the service"`
	Service     string `json:"service" example:"biosync-carechain" doc:"Service name"`
	Version     string `json:"version" example:"1.0.0" doc:"Service version"`
	LastUpdated string `json:"lastUpdated,omitempty" example:"Mar 5, 2024 - 02:30 PM" doc:"Timeline last-write marker, empty for a fresh vault"`
}
