package model

// Venue is a place that can host shows.  It corresponds to a row in the
// `venues` table.  SeekingTalent is derived from SeekingDescription when the
// venue is written and is stored, not recomputed on read.
type Venue struct {
	ID                 int64  `db:"id"`
	Name               string `db:"name"`
	City               string `db:"city"`
	State              string `db:"state"`
	Address            string `db:"address"`
	Phone              string `db:"phone"`
	ImageLink          string `db:"image_link"`
	Website            string `db:"website"`
	FacebookLink       string `db:"facebook_link"`
	Genres             Genres `db:"genres"`
	SeekingTalent      bool   `db:"seeking_talent"`
	SeekingDescription string `db:"seeking_description"`
}

// DeriveSeeking sets SeekingTalent from SeekingDescription.
func (v *Venue) DeriveSeeking() {
	v.SeekingTalent = v.SeekingDescription != ""
}
