// Package entity contains the core business objects of the project.
package entity

// Customer is a person record owned by the persistence store.
type Customer struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"nombre" validate:"required,max=40"`
	LastName  string  `json:"apellido" validate:"required,max=40"`
	Email     string  `json:"email" validate:"required,email,max=100"`
	CreateAt  *Date   `json:"createAt"`
	Region    *Region `json:"region"`
	Photo     string  `json:"foto"` // Stored filename, empty when the customer has no photo.
}

// HasPhoto reports whether a photo file is referenced.
func (c *Customer) HasPhoto() bool {
	return c.Photo != ""
}

// ApplyUpdate copies the mutable fields of src onto c. ID and Photo are kept,
// and so is CreateAt when src does not carry one.
func (c *Customer) ApplyUpdate(src *Customer) {
	c.FirstName = src.FirstName
	c.LastName = src.LastName
	c.Email = src.Email
	if src.CreateAt != nil {
		createAt := *src.CreateAt
		c.CreateAt = &createAt
	}
	c.Region = src.Region
}
