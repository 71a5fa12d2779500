package member_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ktmtfamily/family-tree-api/internal/member"
	"github.com/ktmtfamily/family-tree-api/internal/model"
	sharedError "github.com/ktmtfamily/family-tree-api/internal/shared/error"
	"github.com/ktmtfamily/family-tree-api/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	db       *gorm.DB
	router   *gin.Engine
	uploader *testutil.MockUploader
}

// setupTestEnvironment wires the member routes against an in-memory store
func setupTestEnvironment(t *testing.T) *testEnv {
	t.Helper()

	db := testutil.SetupTestDB(t)
	uploader := testutil.NewMockUploader()

	memberService := member.NewMemberService(member.NewGormRepository(db), uploader, testutil.PlaceholderPhoto)
	memberHandler := member.NewMemberHandler(memberService)

	router := testutil.SetupTestRouter()
	router.POST("/register", memberHandler.Register)
	router.POST("/login", memberHandler.Login)
	router.GET("/tree", memberHandler.Tree)
	router.GET("/admin/pending", memberHandler.ListPending)
	router.PUT("/admin/approve/:id", memberHandler.Approve)
	router.DELETE("/admin/reject/:id", memberHandler.Reject)

	return &testEnv{db: db, router: router, uploader: uploader}
}

func registrationFields(phone string) map[string]string {
	return map[string]string{
		"fullName":   "Ravi Kumar",
		"gender":     "Male",
		"memberType": "Blood_Relative",
		"phone":      phone,
		"password":   "secret",
		"mainFamily": "Kumar",
		"subFamily":  "",
		"parent":     "Suresh Kumar",
		"pincode":    "600001",
		"address":    "12 Temple Street",
		"jobType":    "",
		"jobDetails": "",
		"talent":     "Singing",
	}
}

func register(t *testing.T, env *testEnv, fields map[string]string, files ...testutil.FormFile) int {
	t.Helper()

	recorder := testutil.ExecuteMultipart(t, env.router, testutil.MultipartRequest{
		Method: http.MethodPost,
		URL:    "/register",
		Fields: fields,
		Files:  files,
	})
	return recorder.Code
}

func findByPhone(t *testing.T, db *gorm.DB, phone string) model.Member {
	t.Helper()

	var m model.Member
	require.NoError(t, db.Where("phone = ?", phone).First(&m).Error)
	return m
}

func countMembers(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&model.Member{}).Count(&count).Error)
	return count
}

func TestRegister_WithoutPhoto(t *testing.T) {
	// Given
	env := setupTestEnvironment(t)

	// When
	recorder := testutil.ExecuteMultipart(t, env.router, testutil.MultipartRequest{
		Method: http.MethodPost,
		URL:    "/register",
		Fields: registrationFields("9990001111"),
	})

	// Then
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"message":"Registration Request Sent!"}`, recorder.Body.String())

	stored := findByPhone(t, env.db, "9990001111")
	assert.Equal(t, model.StatusPending, stored.Status)
	assert.Equal(t, testutil.PlaceholderPhoto, stored.Photo)
	assert.False(t, stored.IsAdmin)
	assert.Len(t, stored.ID, 24)
	assert.Empty(t, env.uploader.Calls())
}

func TestRegister_WithPhoto(t *testing.T) {
	env := setupTestEnvironment(t)

	code := register(t, env, registrationFields("9990002222"), testutil.FormFile{
		Field:    "photo",
		Filename: "ravi.jpg",
		Content:  []byte("jpeg-bytes"),
	})
	require.Equal(t, http.StatusOK, code)

	calls := env.uploader.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "ravi.jpg", calls[0].Filename)
	assert.Equal(t, []byte("jpeg-bytes"), calls[0].Content)

	stored := findByPhone(t, env.db, "9990002222")
	assert.Equal(t, "https://res.cloudinary.com/test/image/upload/ravi.jpg", stored.Photo)
}

func TestRegister_EmptyPhotoUsesPlaceholder(t *testing.T) {
	env := setupTestEnvironment(t)

	code := register(t, env, registrationFields("9990003333"), testutil.FormFile{
		Field:    "photo",
		Filename: "empty.jpg",
	})
	require.Equal(t, http.StatusOK, code)

	assert.Empty(t, env.uploader.Calls())
	assert.Equal(t, testutil.PlaceholderPhoto, findByPhone(t, env.db, "9990003333").Photo)
}

func TestRegister_UploadFailureStoresNothing(t *testing.T) {
	env := setupTestEnvironment(t)
	env.uploader.UploadFunc = func(context.Context, string, []byte) (string, error) {
		return "", errors.New("image host unavailable")
	}

	recorder := testutil.ExecuteMultipart(t, env.router, testutil.MultipartRequest{
		Method: http.MethodPost,
		URL:    "/register",
		Fields: registrationFields("9990004444"),
		Files:  []testutil.FormFile{{Field: "photo", Filename: "ravi.jpg", Content: []byte("jpeg")}},
	})

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	var response sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, "MEMBER-004", response.Code)
	assert.Zero(t, countMembers(t, env.db))
}

func TestRegister_DuplicatePhone(t *testing.T) {
	env := setupTestEnvironment(t)
	require.Equal(t, http.StatusOK, register(t, env, registrationFields("9990005555")))

	recorder := testutil.ExecuteMultipart(t, env.router, testutil.MultipartRequest{
		Method: http.MethodPost,
		URL:    "/register",
		Fields: registrationFields("9990005555"),
	})

	assert.Equal(t, http.StatusConflict, recorder.Code)

	var response sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, "MEMBER-002", response.Code)
	assert.Equal(t, int64(1), countMembers(t, env.db))
}

func TestRegister_FreeFormPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
	}{
		{name: "hyphenated", phone: "999-000-1111"},
		{name: "spaced with country code", phone: "+91 99900 01111"},
		{name: "short", phone: "12345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnvironment(t)

			require.Equal(t, http.StatusOK, register(t, env, registrationFields(tt.phone)))
			assert.Equal(t, tt.phone, findByPhone(t, env.db, tt.phone).Phone)

			// Re-registering the same number is a conflict, not a validation error
			recorder := testutil.ExecuteMultipart(t, env.router, testutil.MultipartRequest{
				Method: http.MethodPost,
				URL:    "/register",
				Fields: registrationFields(tt.phone),
			})
			assert.Equal(t, http.StatusConflict, recorder.Code)

			var response sharedError.ErrorResponse
			testutil.ParseResponse(t, recorder, &response)
			assert.Equal(t, "MEMBER-002", response.Code)
			assert.Equal(t, int64(1), countMembers(t, env.db))
		})
	}
}

func TestRegister_ValidationFailure(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]string)
	}{
		{
			name:   "missing full name",
			mutate: func(f map[string]string) { delete(f, "fullName") },
		},
		{
			name:   "missing address",
			mutate: func(f map[string]string) { delete(f, "address") },
		},
		{
			name:   "blank phone",
			mutate: func(f map[string]string) { f["phone"] = "   " },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnvironment(t)
			fields := registrationFields("9990006666")
			tt.mutate(fields)

			code := register(t, env, fields)

			assert.Equal(t, http.StatusBadRequest, code)
			assert.Zero(t, countMembers(t, env.db))
		})
	}
}

func TestModeration_EndToEnd(t *testing.T) {
	env := setupTestEnvironment(t)
	require.Equal(t, http.StatusOK, register(t, env, registrationFields("9990001111")))

	// Pending list shows the record without its password
	recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{Method: http.MethodGet, URL: "/admin/pending"})
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "secret")

	var pending []member.PendingMemberResponse
	testutil.ParseResponse(t, recorder, &pending)
	require.Len(t, pending, 1)
	assert.Equal(t, "Pending", pending[0].Status)
	id := pending[0].ID

	// Not visible in the tree before approval
	recorder = testutil.ExecuteRequest(t, env.router, testutil.TestRequest{Method: http.MethodGet, URL: "/tree"})
	assert.JSONEq(t, `[]`, recorder.Body.String())

	// Approve
	recorder = testutil.ExecuteRequest(t, env.router, testutil.TestRequest{Method: http.MethodPut, URL: "/admin/approve/" + id})
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"message":"User Approved"}`, recorder.Body.String())

	// Approving again still succeeds
	recorder = testutil.ExecuteRequest(t, env.router, testutil.TestRequest{Method: http.MethodPut, URL: "/admin/approve/" + id})
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = testutil.ExecuteRequest(t, env.router, testutil.TestRequest{Method: http.MethodGet, URL: "/admin/pending"})
	assert.JSONEq(t, `[]`, recorder.Body.String())

	recorder = testutil.ExecuteRequest(t, env.router, testutil.TestRequest{Method: http.MethodGet, URL: "/tree"})
	var tree []member.TreeMemberResponse
	testutil.ParseResponse(t, recorder, &tree)
	require.Len(t, tree, 1)
	assert.Equal(t, id, tree[0].ID)
	assert.Equal(t, "Ravi Kumar", tree[0].Name)
	assert.Equal(t, "9990001111", tree[0].Phone)
	assert.Equal(t, "N/A", tree[0].JobType)
	assert.Equal(t, "N/A", tree[0].JobDetails)
	assert.Equal(t, "Singing", tree[0].Talent)
	assert.Equal(t, "", tree[0].SubFamily)

	// Login
	recorder = testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/login",
		Body:   member.LoginRequest{Phone: "9990001111", Password: "secret"},
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var login member.LoginResponse
	testutil.ParseResponse(t, recorder, &login)
	assert.Equal(t, "Login successful", login.Message)
	assert.Equal(t, "Ravi Kumar", login.Name)
	assert.Equal(t, testutil.PlaceholderPhoto, login.Photo)
	assert.False(t, login.IsAdmin)
}

func TestTree_AppliesDefaults(t *testing.T) {
	env := setupTestEnvironment(t)

	m := model.NewMember()
	m.Name = "Old Record"
	m.Phone = "9990007777"
	m.Password = "pw"
	m.Photo = "https://example.com/p.jpg"
	m.Status = model.StatusApproved
	require.NoError(t, env.db.Create(m).Error)

	recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{Method: http.MethodGet, URL: "/tree"})
	require.Equal(t, http.StatusOK, recorder.Code)

	var tree []map[string]any
	testutil.ParseResponse(t, recorder, &tree)
	require.Len(t, tree, 1)
	assert.Equal(t, m.ID, tree[0]["_id"])
	assert.Equal(t, "N/A", tree[0]["gender"])
	assert.Equal(t, "Blood_Relative", tree[0]["memberType"])
	assert.Equal(t, "N/A", tree[0]["talent"])
	assert.NotContains(t, tree[0], "password")
	assert.NotContains(t, tree[0], "status")
}

func TestApprove_Errors(t *testing.T) {
	env := setupTestEnvironment(t)

	tests := []struct {
		name       string
		id         string
		wantStatus int
		wantCode   string
	}{
		{name: "malformed id", id: "not-an-id", wantStatus: http.StatusBadRequest, wantCode: "MEMBER-003"},
		{name: "unknown id", id: "64b7f0c2a1b2c3d4e5f60718", wantStatus: http.StatusNotFound, wantCode: "MEMBER-001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{Method: http.MethodPut, URL: "/admin/approve/" + tt.id})

			assert.Equal(t, tt.wantStatus, recorder.Code)

			var response sharedError.ErrorResponse
			testutil.ParseResponse(t, recorder, &response)
			assert.Equal(t, tt.wantCode, response.Code)
		})
	}
}

func TestApproveAndReject_UpperCaseID(t *testing.T) {
	env := setupTestEnvironment(t)
	require.Equal(t, http.StatusOK, register(t, env, registrationFields("9990001212")))
	require.Equal(t, http.StatusOK, register(t, env, registrationFields("9990001313")))

	approveID := strings.ToUpper(findByPhone(t, env.db, "9990001212").ID)
	rejectID := strings.ToUpper(findByPhone(t, env.db, "9990001313").ID)

	recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{Method: http.MethodPut, URL: "/admin/approve/" + approveID})
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, model.StatusApproved, findByPhone(t, env.db, "9990001212").Status)

	recorder = testutil.ExecuteRequest(t, env.router, testutil.TestRequest{Method: http.MethodDelete, URL: "/admin/reject/" + rejectID})
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, int64(1), countMembers(t, env.db))
}

func TestReject(t *testing.T) {
	env := setupTestEnvironment(t)
	require.Equal(t, http.StatusOK, register(t, env, registrationFields("9990008888")))
	id := findByPhone(t, env.db, "9990008888").ID

	recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{Method: http.MethodDelete, URL: "/admin/reject/" + id})
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"message":"User Rejected"}`, recorder.Body.String())
	assert.Zero(t, countMembers(t, env.db))

	// Second reject finds nothing
	recorder = testutil.ExecuteRequest(t, env.router, testutil.TestRequest{Method: http.MethodDelete, URL: "/admin/reject/" + id})
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = testutil.ExecuteRequest(t, env.router, testutil.TestRequest{Method: http.MethodDelete, URL: "/admin/reject/xyz"})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestLogin_Failures(t *testing.T) {
	env := setupTestEnvironment(t)
	require.Equal(t, http.StatusOK, register(t, env, registrationFields("9990009999")))

	tests := []struct {
		name     string
		request  member.LoginRequest
		wantCode string
	}{
		{
			name:     "unknown phone",
			request:  member.LoginRequest{Phone: "1112223333", Password: "secret"},
			wantCode: "AUTH-001",
		},
		{
			name:     "wrong password is reported before approval",
			request:  member.LoginRequest{Phone: "9990009999", Password: "wrong"},
			wantCode: "AUTH-002",
		},
		{
			name:     "not approved",
			request:  member.LoginRequest{Phone: "9990009999", Password: "secret"},
			wantCode: "AUTH-003",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/login",
				Body:   tt.request,
			})

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)

			var response sharedError.ErrorResponse
			testutil.ParseResponse(t, recorder, &response)
			assert.Equal(t, tt.wantCode, response.Code)
		})
	}
}

func TestLogin_MissingFields(t *testing.T) {
	env := setupTestEnvironment(t)

	recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/login",
		Body:   map[string]string{"phone": "9990001111"},
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
