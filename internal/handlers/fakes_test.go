package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kyc-service/internal/models"
	"kyc-service/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeUserService struct {
	users     map[int64]*models.User
	nextID    int64
	createErr error
	updateErr error
	deleteErr error
}

func newFakeUserService(ids ...int64) *fakeUserService {
	s := &fakeUserService{users: map[int64]*models.User{}, nextID: 1}
	for _, id := range ids {
		s.users[id] = &models.User{ID: id, Name: "test", Phone: "9999999999"}
		if id >= s.nextID {
			s.nextID = id + 1
		}
	}
	return s
}

func (s *fakeUserService) CreateUser(req *models.CreateUserRequest) (int64, error) {
	if s.createErr != nil {
		return 0, s.createErr
	}
	id := s.nextID
	s.nextID++
	s.users[id] = &models.User{ID: id, Name: req.Name, Phone: req.Phone, Aadhaar: req.Aadhaar}
	return id, nil
}

func (s *fakeUserService) GetUserByID(id int64) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func (s *fakeUserService) UpdateUser(id int64, req *models.UpdateUserRequest) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	user, ok := s.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Aadhaar != nil {
		user.Aadhaar = req.Aadhaar
	}
	return nil
}

func (s *fakeUserService) DeleteUser(ctx context.Context, id int64) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	if _, ok := s.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

type fakeDocumentService struct {
	uploads   int
	docs      map[int64][]models.Document
	uploadErr error
	listErr   error
	deleteErr error
}

func newFakeDocumentService() *fakeDocumentService {
	return &fakeDocumentService{docs: map[int64][]models.Document{}}
}

func (s *fakeDocumentService) UploadDocument(ctx context.Context, userID int64, docType string, file io.Reader, header *multipart.FileHeader) (*models.UploadDocumentResponse, error) {
	if s.uploadErr != nil {
		return nil, s.uploadErr
	}
	s.uploads++
	docID := int64(s.uploads)
	url := "https://store.example.com/object/public/kyc/documents/" + header.Filename
	s.docs[userID] = append(s.docs[userID], models.Document{ID: docID, UserID: userID, DocType: docType, DocURL: url, Status: "pending"})
	return &models.UploadDocumentResponse{DocID: docID, DocURL: url}, nil
}

func (s *fakeDocumentService) ListDocuments(userID int64) ([]models.Document, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	docs := s.docs[userID]
	if docs == nil {
		docs = []models.Document{}
	}
	return docs, nil
}

func (s *fakeDocumentService) DeleteDocument(id int64) error {
	return s.deleteErr
}

type fakeFaceService struct {
	uploads   int
	faces     map[int64][]models.Face
	uploadErr error
	listErr   error
	deleteErr error
}

func newFakeFaceService() *fakeFaceService {
	return &fakeFaceService{faces: map[int64][]models.Face{}}
}

func (s *fakeFaceService) UploadFace(ctx context.Context, userID int64, file io.Reader, header *multipart.FileHeader) (*models.UploadFaceResponse, error) {
	if s.uploadErr != nil {
		return nil, s.uploadErr
	}
	s.uploads++
	faceID := int64(s.uploads)
	url := "https://store.example.com/object/public/kyc/faces/" + header.Filename
	s.faces[userID] = append(s.faces[userID], models.Face{ID: faceID, UserID: userID, FaceURL: url, Status: "pending"})
	return &models.UploadFaceResponse{FaceID: faceID, FaceURL: url}, nil
}

func (s *fakeFaceService) ListFaces(userID int64) ([]models.Face, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	faces := s.faces[userID]
	if faces == nil {
		faces = []models.Face{}
	}
	return faces, nil
}

func (s *fakeFaceService) DeleteFace(id int64) error {
	return s.deleteErr
}

// request helpers

func performJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func performMultipart(t *testing.T, router *gin.Engine, path string, fields map[string]string, fileField, filename string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = part.Write([]byte("file contents"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}
