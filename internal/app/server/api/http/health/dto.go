package health

type Input struct{}

type Output struct {
	Body Response
}

type Response struct {
	Status  string         `json:"status" example:"OK" doc:"Health status of the service"`
	Uptime  string         `json:"uptime" example:"1h2m3s" doc:"Time since the API was built"`
	Records map[string]int `json:"records" doc:"Record count per storage key"`
}
