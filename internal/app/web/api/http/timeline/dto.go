package timeline

import (
	"github.com/SriNikhita22/biosync-carechain/internal/domain/timeline"
)

type listInput struct {
	Category string `query:"category" example:"Labs" doc:"Category filter, one of Labs, Surgeries, Prescriptions or All"`
	Search   string `query:"search" doc:"Case-insensitive substring matched against title, summary and notes"`
	Sort     string `query:"sort" enum:"desc,asc" default:"desc" doc:"Date sort order"`
}

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Events   []timeline.Event `json:"events"`
	LastSync string           `json:"lastSync,omitempty"`
}

type createInput struct {
	Body eventRequest
}

type updateInput struct {
	ID   string `path:"id" doc:"Event id"`
	Body eventRequest
}

// eventRequest mirrors timeline.Draft: absent fields keep their current
// value on update and their default on create.
type eventRequest struct {
	Date     *string `json:"date,omitempty" doc:"Event date, YYYY-MM-DD"`
	Category *string `json:"category,omitempty" enum:"Labs,Surgeries,Prescriptions" doc:"Event category"`
	Title    *string `json:"title,omitempty" doc:"Event title"`
	Summary  *string `json:"summary,omitempty" doc:"Short summary"`
	Notes    *string `json:"notes,omitempty" doc:"Free-form notes"`
	FileName *string `json:"fileName,omitempty" doc:"Attachment file name"`
	FileData *string `json:"fileData,omitempty" doc:"Attachment as data URL"`
}

type eventOutput struct {
	Body timeline.Event
}

type deleteInput struct {
	ID string `path:"id" doc:"Event id"`
}

type deleteOutput struct {
	Body deleteResponse
}

type deleteResponse struct {
	Status string `json:"status"`
}

func (r eventRequest) draft() timeline.Draft {
	d := timeline.Draft{
		Date:     r.Date,
		Title:    r.Title,
		Summary:  r.Summary,
		Notes:    r.Notes,
		FileName: r.FileName,
		FileData: r.FileData,
	}
	if r.Category != nil {
		category := timeline.Category(*r.Category)
		d.Category = &category
	}
	return d
}
