package model

// AdminCredentialsType keys the single settings document holding the admin password.
const AdminCredentialsType = "admin_credentials"

// Setting is a typed settings document. Only AdminCredentialsType exists.
// Password is nil when the field is absent, which differs from "".
type Setting struct {
	Type     string  `gorm:"column:type;primaryKey;size:50" bson:"type"`
	Password *string `gorm:"column:password;size:100" bson:"password,omitempty"`
}

// TableName specifies the table name for Setting
func (*Setting) TableName() string {
	return "settings"
}
