package calendar

import "projectx/internal/domain/record"

type dayInput struct {
	Date string `query:"date" format:"date" example:"2025-04-24" doc:"Day to show, defaults to today"`
}

type dayOutput struct {
	Body DayResponse
}

type DayResponse struct {
	Date     string         `json:"date" doc:"The day shown"`
	Calendar string         `json:"calendar" doc:"Default calendar for new events"`
	Events   []record.Event `json:"events" doc:"Events overlapping the day"`
}
