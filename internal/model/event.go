package model

// Event is an announcement shown on the website. ID is a generated UUID used
// for external addressing; the Mongo _id is never exposed. Date is free text.
type Event struct {
	ID               string `gorm:"column:id;primaryKey;size:36" bson:"id"`
	Title            string `gorm:"column:title;size:200;not null" bson:"title"`
	Description      string `gorm:"column:description;size:2000" bson:"description"`
	Date             string `gorm:"column:date;size:100" bson:"date"`
	Location         string `gorm:"column:location;size:200" bson:"location"`
	ImageURL         string `gorm:"column:image_url;size:500" bson:"image_url"`
	RegistrationLink string `gorm:"column:registration_link;size:500" bson:"registration_link"`
}

// TableName specifies the table name for Event
func (*Event) TableName() string {
	return "events"
}
