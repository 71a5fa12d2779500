package member

import (
	"context"
	"errors"
	"fmt"

	"github.com/ktmtfamily/family-tree-api/internal/imagehost"
	"github.com/ktmtfamily/family-tree-api/internal/model"
	"github.com/ktmtfamily/family-tree-api/internal/shared/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Read-time defaults for fields missing on older records
const (
	defaultNA         = "N/A"
	defaultMemberType = "Blood_Relative"
)

type MemberService struct {
	memberRepository Repository
	uploader         imagehost.Uploader
	placeholderPhoto string
}

func NewMemberService(memberRepository Repository, uploader imagehost.Uploader, placeholderPhoto string) *MemberService {
	return &MemberService{
		memberRepository: memberRepository,
		uploader:         uploader,
		placeholderPhoto: placeholderPhoto,
	}
}

// Register stores a pending member. The phone check and the insert are not
// atomic: two concurrent registrations with one phone can both succeed.
// A failed upload aborts before anything is written.
func (s *MemberService) Register(ctx context.Context, request *RegisterRequest, photo *Photo) error {
	log := logger.FromContext(ctx).With("phone", logger.MaskPhone(request.Phone))

	exists, err := s.memberRepository.ExistsByPhone(ctx, request.Phone)
	if err != nil {
		log.Error("Failed to check phone", "error", err)
		return fmt.Errorf("check phone: %w", err)
	}
	if exists {
		log.Warn("Phone already registered")
		return fmt.Errorf("register: %w", ErrPhoneAlreadyRegistered)
	}

	photoURL := s.placeholderPhoto
	if photo != nil {
		photoURL, err = s.uploader.Upload(ctx, photo.Filename, photo.Content)
		if err != nil {
			log.Error("Photo upload failed", "filename", photo.Filename, "error", err)
			return fmt.Errorf("upload photo: %v: %w", err, ErrImageUploadFailed)
		}
	}

	member := model.NewMember()
	member.Name = request.FullName
	member.Gender = request.Gender
	member.MemberType = request.MemberType
	member.Phone = request.Phone
	member.Password = request.Password
	member.MainFamily = request.MainFamily
	member.SubFamily = request.SubFamily
	member.Parent = request.Parent
	member.Pincode = request.Pincode
	member.Address = request.Address
	member.JobType = request.JobType
	member.JobDetails = request.JobDetails
	member.Talent = request.Talent
	member.Photo = photoURL

	if err := s.memberRepository.Create(ctx, member); err != nil {
		log.Error("Failed to create member", "error", err)
		return fmt.Errorf("create member: %w", err)
	}

	log.Info("Registration request stored", "member_id", member.ID)
	return nil
}

// ListPending returns every member awaiting moderation
func (s *MemberService) ListPending(ctx context.Context) ([]PendingMemberResponse, error) {
	members, err := s.memberRepository.FindByStatus(ctx, model.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("find pending members: %w", err)
	}

	response := make([]PendingMemberResponse, 0, len(members))
	for i := range members {
		m := &members[i]
		response = append(response, PendingMemberResponse{
			ID:         m.ID,
			Name:       m.Name,
			Gender:     m.Gender,
			MemberType: m.MemberType,
			Phone:      m.Phone,
			MainFamily: m.MainFamily,
			SubFamily:  m.SubFamily,
			Parent:     m.Parent,
			Pincode:    m.Pincode,
			Address:    m.Address,
			JobType:    m.JobType,
			JobDetails: m.JobDetails,
			Talent:     m.Talent,
			Photo:      m.Photo,
			Status:     string(m.Status),
			IsAdmin:    m.IsAdmin,
		})
	}
	return response, nil
}

// Approve makes a member visible in the tree. Approving an approved member succeeds.
func (s *MemberService) Approve(ctx context.Context, memberID string) error {
	log := logger.FromContext(ctx).With("member_id", memberID)

	memberID, err := normalizeID(memberID)
	if err != nil {
		log.Warn("Approve with invalid id")
		return err
	}

	matched, err := s.memberRepository.UpdateStatus(ctx, memberID, model.StatusApproved)
	if err != nil {
		log.Error("Failed to approve member", "error", err)
		return fmt.Errorf("approve member: %w", err)
	}
	if !matched {
		log.Warn("Approve target not found")
		return fmt.Errorf("approve memberID=%s: %w", memberID, ErrMemberNotFound)
	}

	log.Info("Member approved")
	return nil
}

// Reject deletes the member whatever its status. No trace is kept.
func (s *MemberService) Reject(ctx context.Context, memberID string) error {
	log := logger.FromContext(ctx).With("member_id", memberID)

	memberID, err := normalizeID(memberID)
	if err != nil {
		log.Warn("Reject with invalid id")
		return err
	}

	deleted, err := s.memberRepository.Delete(ctx, memberID)
	if err != nil {
		log.Error("Failed to reject member", "error", err)
		return fmt.Errorf("reject member: %w", err)
	}
	if !deleted {
		log.Warn("Reject target not found")
		return fmt.Errorf("reject memberID=%s: %w", memberID, ErrMemberNotFound)
	}

	log.Info("Member rejected")
	return nil
}

// Tree returns the approved members with defaults filled in
func (s *MemberService) Tree(ctx context.Context) ([]TreeMemberResponse, error) {
	members, err := s.memberRepository.FindByStatus(ctx, model.StatusApproved)
	if err != nil {
		return nil, fmt.Errorf("find approved members: %w", err)
	}

	response := make([]TreeMemberResponse, 0, len(members))
	for i := range members {
		m := &members[i]
		response = append(response, TreeMemberResponse{
			ID:         m.ID,
			Name:       m.Name,
			Gender:     orDefault(m.Gender, defaultNA),
			MemberType: orDefault(m.MemberType, defaultMemberType),
			Photo:      m.Photo,
			Phone:      m.Phone,
			MainFamily: m.MainFamily,
			SubFamily:  m.SubFamily,
			Parent:     m.Parent,
			JobType:    orDefault(m.JobType, defaultNA),
			JobDetails: orDefault(m.JobDetails, defaultNA),
			Talent:     orDefault(m.Talent, defaultNA),
		})
	}
	return response, nil
}

// Login checks a member's phone and plain-text password. Reasons are
// reported in order: unknown phone, wrong password, not yet approved.
func (s *MemberService) Login(ctx context.Context, request *LoginRequest) (*LoginResponse, error) {
	log := logger.FromContext(ctx).With("phone", logger.MaskPhone(request.Phone))

	member, err := s.memberRepository.FindByPhone(ctx, request.Phone)
	if err != nil {
		if errors.Is(err, ErrNoRecord) {
			log.Warn("Login failed - phone not registered")
			return nil, fmt.Errorf("login: %w", ErrLoginUserNotFound)
		}
		log.Error("Login failed - unknown error", "error", err)
		return nil, fmt.Errorf("login: %w", err)
	}

	if member.Password != request.Password {
		log.Warn("Login failed - wrong password")
		return nil, fmt.Errorf("login: %w", ErrLoginWrongPassword)
	}

	if !member.IsApproved() {
		log.Warn("Login failed - not approved", "status", member.Status)
		return nil, fmt.Errorf("login: %w", ErrLoginNotApproved)
	}

	log.Info("Login successful", "member_id", member.ID)
	return &LoginResponse{
		Message: "Login successful",
		Name:    member.Name,
		Photo:   member.Photo,
		IsAdmin: member.IsAdmin,
	}, nil
}

// normalizeID checks memberID is an ObjectID and returns its lower-case hex
// form, the form every store keys on.
func normalizeID(memberID string) (string, error) {
	oid, err := primitive.ObjectIDFromHex(memberID)
	if err != nil {
		return "", fmt.Errorf("memberID=%q: %w", memberID, ErrInvalidMemberID)
	}
	return oid.Hex(), nil
}

// orDefault treats an empty value as absent
func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
