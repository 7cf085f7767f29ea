package model

// Artist is a performer who can play shows.  Row of the `artists` table.
type Artist struct {
	ID                 int64  `db:"id"`
	Name               string `db:"name"`
	City               string `db:"city"`
	State              string `db:"state"`
	Phone              string `db:"phone"`
	Genres             Genres `db:"genres"`
	ImageLink          string `db:"image_link"`
	FacebookLink       string `db:"facebook_link"`
	Website            string `db:"website"`
	SeekingVenue       bool   `db:"seeking_venue"`
	SeekingDescription string `db:"seeking_description"`
}

// DeriveSeeking sets SeekingVenue from SeekingDescription.
func (a *Artist) DeriveSeeking() {
	a.SeekingVenue = a.SeekingDescription != ""
}
