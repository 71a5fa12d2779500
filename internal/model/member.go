package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemberStatus drives visibility. Rejection deletes the record, so there is
// no rejected status.
type MemberStatus string

const (
	StatusPending  MemberStatus = "Pending"
	StatusApproved MemberStatus = "Approved"
)

// Member is one registrant of the family directory.
//
// ID is a 24-char hex ObjectID. Mongo stores it as the native _id (see the
// member repository), SQL stores the hex string as primary key. Phone is
// indexed but not unique; uniqueness is checked before insert only.
type Member struct {
	ID string `gorm:"column:id;primaryKey;size:24" bson:"-"`

	Name       string `gorm:"column:name;size:100;not null" bson:"name"`
	Gender     string `gorm:"column:gender;size:20" bson:"gender"`
	MemberType string `gorm:"column:member_type;size:50" bson:"memberType"`
	Phone      string `gorm:"column:phone;size:20;not null;index:idx_member_phone" bson:"phone"`
	Password   string `gorm:"column:password;size:100;not null" bson:"password"` // plain text

	MainFamily string `gorm:"column:main_family;size:100" bson:"mainFamily"`
	SubFamily  string `gorm:"column:sub_family;size:100" bson:"subFamily"`
	Parent     string `gorm:"column:parent;size:100" bson:"parent"` // free-text label, not a reference
	Pincode    string `gorm:"column:pincode;size:20" bson:"pincode"`
	Address    string `gorm:"column:address;size:500" bson:"address"`
	JobType    string `gorm:"column:job_type;size:100" bson:"jobType"`
	JobDetails string `gorm:"column:job_details;size:500" bson:"jobDetails"`
	Talent     string `gorm:"column:talent;size:500" bson:"talent"`
	Photo      string `gorm:"column:photo;size:500" bson:"photo"`

	Status  MemberStatus `gorm:"column:status;size:20;not null;index:idx_member_status" bson:"status"`
	IsAdmin bool         `gorm:"column:is_admin;not null;default:false" bson:"isAdmin"` // never set true

	BaseEntity `bson:",inline"`
}

// TableName specifies the table name for Member
func (*Member) TableName() string {
	return "members"
}

// NewMember creates a pending, non-admin member with a fresh identifier.
func NewMember() *Member {
	return &Member{
		ID:      primitive.NewObjectID().Hex(),
		Status:  StatusPending,
		IsAdmin: false,
	}
}

// IsApproved reports whether the member is visible in the tree.
func (m *Member) IsApproved() bool {
	return m.Status == StatusApproved
}
