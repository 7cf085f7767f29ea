package form

import (
	"strings"

	"github.com/iliyamo/fyyur/internal/model"
)

// VenueForm is the create and edit form of a venue.
type VenueForm struct {
	Name               string   `form:"name" validate:"required,max=255"`
	City               string   `form:"city" validate:"required,max=120"`
	State              string   `form:"state" validate:"required,state"`
	Address            string   `form:"address" validate:"required,max=120"`
	Phone              string   `form:"phone" validate:"omitempty,phone"`
	ImageLink          string   `form:"image_link" validate:"omitempty,url,max=500"`
	Genres             []string `form:"genres" validate:"min=1,dive,genre"`
	FacebookLink       string   `form:"facebook_link" validate:"omitempty,url,max=500"`
	Website            string   `form:"website" validate:"omitempty,url,max=500"`
	SeekingDescription string   `form:"seeking_description" validate:"max=500"`
}

// Normalize trims whitespace from every field.
func (f *VenueForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.City = strings.TrimSpace(f.City)
	f.State = strings.TrimSpace(f.State)
	f.Address = strings.TrimSpace(f.Address)
	f.Phone = strings.TrimSpace(f.Phone)
	f.ImageLink = strings.TrimSpace(f.ImageLink)
	f.Genres = trimAll(f.Genres)
	f.FacebookLink = strings.TrimSpace(f.FacebookLink)
	f.Website = strings.TrimSpace(f.Website)
	f.SeekingDescription = strings.TrimSpace(f.SeekingDescription)
}

// Venue converts the form into a model.  The id is left to the caller.
func (f VenueForm) Venue() *model.Venue {
	v := &model.Venue{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		Website:            f.Website,
		FacebookLink:       f.FacebookLink,
		Genres:             model.Genres(append([]string(nil), f.Genres...)),
		SeekingDescription: f.SeekingDescription,
	}
	v.DeriveSeeking()
	return v
}

// VenueFormFrom pre-populates the edit form from a stored venue.
func VenueFormFrom(v *model.Venue) VenueForm {
	return VenueForm{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		ImageLink:          v.ImageLink,
		Genres:             append([]string(nil), v.Genres...),
		FacebookLink:       v.FacebookLink,
		Website:            v.Website,
		SeekingDescription: v.SeekingDescription,
	}
}
