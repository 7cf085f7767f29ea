package form

import (
	"strings"

	"github.com/iliyamo/fyyur/internal/model"
)

// ArtistForm is the create and edit form of an artist.  Artists have no
// street address.
type ArtistForm struct {
	Name               string   `form:"name" validate:"required,max=255"`
	City               string   `form:"city" validate:"required,max=120"`
	State              string   `form:"state" validate:"required,state"`
	Phone              string   `form:"phone" validate:"omitempty,phone"`
	ImageLink          string   `form:"image_link" validate:"omitempty,url,max=500"`
	Genres             []string `form:"genres" validate:"min=1,dive,genre"`
	FacebookLink       string   `form:"facebook_link" validate:"omitempty,url,max=500"`
	Website            string   `form:"website" validate:"omitempty,url,max=500"`
	SeekingDescription string   `form:"seeking_description" validate:"max=500"`
}

// Normalize trims whitespace from every field.
func (f *ArtistForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.City = strings.TrimSpace(f.City)
	f.State = strings.TrimSpace(f.State)
	f.Phone = strings.TrimSpace(f.Phone)
	f.ImageLink = strings.TrimSpace(f.ImageLink)
	f.Genres = trimAll(f.Genres)
	f.FacebookLink = strings.TrimSpace(f.FacebookLink)
	f.Website = strings.TrimSpace(f.Website)
	f.SeekingDescription = strings.TrimSpace(f.SeekingDescription)
}

// Artist converts the form into a model.
func (f ArtistForm) Artist() *model.Artist {
	a := &model.Artist{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		Genres:             model.Genres(append([]string(nil), f.Genres...)),
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		Website:            f.Website,
		SeekingDescription: f.SeekingDescription,
	}
	a.DeriveSeeking()
	return a
}

// ArtistFormFrom pre-populates the edit form from a stored artist.
func ArtistFormFrom(a *model.Artist) ArtistForm {
	return ArtistForm{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		ImageLink:          a.ImageLink,
		Genres:             append([]string(nil), a.Genres...),
		FacebookLink:       a.FacebookLink,
		Website:            a.Website,
		SeekingDescription: a.SeekingDescription,
	}
}
