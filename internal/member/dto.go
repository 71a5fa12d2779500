package member

import (
	"io"
	"mime/multipart"
)

// RegisterRequest is the multipart registration form. Free-text career
// fields and subFamily may be blank.
type RegisterRequest struct {
	FullName   string `form:"fullName" binding:"required,max=100"`
	Gender     string `form:"gender" binding:"required,max=20"`
	MemberType string `form:"memberType" binding:"required,max=50"`
	Phone      string `form:"phone" binding:"required,max=20,phone"`
	Password   string `form:"password" binding:"required,max=100"`
	MainFamily string `form:"mainFamily" binding:"required,max=100"`
	SubFamily  string `form:"subFamily" binding:"max=100"`
	Parent     string `form:"parent" binding:"required,max=100"`
	Pincode    string `form:"pincode" binding:"required,max=20"`
	Address    string `form:"address" binding:"required,max=500"`
	JobType    string `form:"jobType" binding:"max=100"`
	JobDetails string `form:"jobDetails" binding:"max=500"`
	Talent     string `form:"talent" binding:"max=500"`

	Photo *multipart.FileHeader `form:"photo"`
}

// Photo is an uploaded file handed to the service.
type Photo struct {
	Filename string
	Content  io.Reader
}

// PendingMemberResponse is a stored record awaiting moderation. The store
// identifier is exposed as a plain string and the password is withheld.
type PendingMemberResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Gender     string `json:"gender"`
	MemberType string `json:"memberType"`
	Phone      string `json:"phone"`
	MainFamily string `json:"mainFamily"`
	SubFamily  string `json:"subFamily"`
	Parent     string `json:"parent"`
	Pincode    string `json:"pincode"`
	Address    string `json:"address"`
	JobType    string `json:"jobType"`
	JobDetails string `json:"jobDetails"`
	Talent     string `json:"talent"`
	Photo      string `json:"photo"`
	Status     string `json:"status"`
	IsAdmin    bool   `json:"isAdmin"`
}

// TreeMemberResponse is the fixed projection of an approved member. The
// caller assembles the tree from Parent labels.
type TreeMemberResponse struct {
	ID         string `json:"_id"`
	Name       string `json:"name"`
	Gender     string `json:"gender"`
	MemberType string `json:"memberType"`
	Photo      string `json:"photo"`
	Phone      string `json:"phone"`
	MainFamily string `json:"mainFamily"`
	SubFamily  string `json:"subFamily"`
	Parent     string `json:"parent"`
	JobType    string `json:"jobType"`
	JobDetails string `json:"jobDetails"`
	Talent     string `json:"talent"`
}

type LoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Name    string `json:"name"`
	Photo   string `json:"photo"`
	IsAdmin bool   `json:"isAdmin"`
}
