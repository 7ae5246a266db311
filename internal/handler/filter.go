package handler

import (
	"strings"

	"github.com/edupay/salaryboard/internal/model"
)

// filterAll is the dropdown value meaning "no restriction".
const filterAll = "all"

// FilterQuery holds the filter query parameters shared by the dashboard,
// district, chart and export endpoints. States may be passed repeated
// (?states=a&states=b) or comma-separated.
type FilterQuery struct {
	Region string   `form:"region" binding:"omitempty,max=40"`
	States []string `form:"states" binding:"omitempty,dive,max=60"`
}

// ToFilter normalizes the query into a dataset filter, treating "all" and
// empty values as no restriction.
func (q FilterQuery) ToFilter() model.DatasetFilter {
	f := model.DatasetFilter{}

	if !strings.EqualFold(q.Region, filterAll) {
		f.Region = strings.TrimSpace(q.Region)
	}

	for _, raw := range q.States {
		for _, s := range strings.Split(raw, ",") {
			s = strings.TrimSpace(s)
			if s == "" || strings.EqualFold(s, filterAll) {
				continue
			}
			f.States = append(f.States, s)
		}
	}

	return f
}
