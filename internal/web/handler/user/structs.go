package user

// upsertInput is the JSON body for creating and updating a user.
type upsertInput struct {
	FirstName string `json:"firstName" validate:"required,max=25"`
	LastName  string `json:"lastName" validate:"required,max=25"`
}
