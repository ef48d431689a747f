package group

import "time"

// upsertInput is the JSON body for creating and updating a group.
type upsertInput struct {
	GroupName      string    `json:"groupName" validate:"required,max=70"`
	GroupType      string    `json:"groupType" validate:"required,oneof=one_day weekly permanent"`
	EndOfOrderTime time.Time `json:"endOfOrderTime" validate:"required"`
}

// countResponse is the JSON body of the member and line item count endpoints.
type countResponse struct {
	Count int64 `json:"count"`
}
